// Package preprocess expands the directives of a markdown document line by
// line. Shell substitutions are evaluated by one interpreter that lives for
// the whole document, so variables bound by %title and %meta lines are
// visible to every later $(...) substitution.
package preprocess

import (
	"bufio"
	"errors"
	"io"
	"log/slog"

	"github.com/nickwells/location.mod/location"

	"github.com/gubarz/mdpp/internal/directive"
	"github.com/gubarz/mdpp/internal/interpreter"
)

// Processor drives the expansion of documents
type Processor struct {
	table  directive.Table
	logger *slog.Logger
}

// Option configures a Processor
type Option func(p *Processor)

// WithTable replaces the built-in directive table
func WithTable(t directive.Table) Option {
	return func(p *Processor) {
		p.table = t
	}
}

// WithLogger sets the logger the processor traces to
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates a processor using the built-in directive table
func New(opts ...Option) *Processor {
	p := &Processor{
		table:  directive.Builtin(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Table returns the directive table in priority order
func (p *Processor) Table() directive.Table {
	return p.table
}

// RunShell starts shell as the document's interpreter, expands src into dst
// and stops the interpreter again.
func (p *Processor) RunShell(name string, src io.Reader, dst io.Writer, shell string, opts ...interpreter.Option) error {
	opts = append([]interpreter.Option{interpreter.WithLogger(p.logger)}, opts...)
	proc, err := interpreter.Spawn(shell, nil, opts...)
	if err != nil {
		return err
	}

	runErr := p.Run(name, src, dst, proc)
	closeErr := proc.Close()
	if runErr != nil {
		return runErr
	}
	return closeErr
}

// Run expands every line of src into dst using interp for shell directives.
// name identifies src in error messages. The first error aborts the run;
// output produced before it is still flushed to dst.
func (p *Processor) Run(name string, src io.Reader, dst io.Writer, interp interpreter.Interpreter) error {
	st := NewState(interp)
	out := bufio.NewWriter(dst)
	loc := location.New(name)

	r := bufio.NewReader(src)

	p.logger.Debug("preprocess started", "source", name)
	lines := 0
	for {
		raw, readErr := r.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			loc.Incr()
			_ = out.Flush()
			return atLocation(wrapIOError(readErr, "read line"), loc)
		}
		if raw == "" && readErr != nil {
			break
		}
		loc.Incr()
		lines++

		line := directive.TrimRight(raw)
		st.TrackCodeBlock(line)

		if err := p.processLine(st, line, out); err != nil {
			_ = out.Flush()
			return atLocation(err, loc)
		}
		if readErr != nil {
			break
		}
	}

	if err := out.Flush(); err != nil {
		return wrapIOError(err, "write output")
	}
	p.logger.Debug("preprocess finished", "source", name, "lines", lines)
	return nil
}
