package interpreter

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"
)

// DefaultTerminator ends every statement sent to the interpreter
const DefaultTerminator = ";"

// ============================================================================
// Interpreter Interface
// ============================================================================

// Interpreter is a stateful command evaluator whose variables persist
// between calls. Calls are strictly sequential: a new request is never sent
// before the previous Evaluate has consumed its line.
type Interpreter interface {
	// Evaluate runs a statement and returns the first line it printed
	Evaluate(statement string) (string, error)
	// Execute runs a statement without reading any result
	Execute(statement string) error
}

// Bind renders an assignment of value to the variable name. The value is
// wrapped in single quotes without escaping quotes it contains.
func Bind(name, value string) string {
	return name + "='" + value + "'"
}

// ============================================================================
// Session
// ============================================================================

// Session speaks the lock-step statement protocol over a send stream and a
// receive stream.
type Session struct {
	w          *bufio.Writer
	r          *bufio.Reader
	terminator string
	logger     *slog.Logger
}

// Option configures a Session
type Option func(s *Session)

// WithTerminator sets the statement terminator (default ";")
func WithTerminator(terminator string) Option {
	return func(s *Session) {
		s.terminator = terminator
	}
}

// WithLogger sets the logger requests are traced to
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession creates a session that sends statements to w and reads results
// from r.
func NewSession(w io.Writer, r io.Reader, opts ...Option) *Session {
	s := &Session{
		w:          bufio.NewWriter(w),
		r:          bufio.NewReader(r),
		terminator: DefaultTerminator,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Evaluate sends the statement and reads exactly one line of output. If the
// statement prints more than one line the remaining lines stay buffered and
// are returned by later calls.
func (s *Session) Evaluate(statement string) (string, error) {
	if err := s.send(statement); err != nil {
		return "", err
	}

	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", wrapIOError(err, "interpreter read")
		}
		if line == "" {
			return "", wrapIOError(io.ErrUnexpectedEOF, "interpreter closed its output")
		}
	}

	result := strings.TrimRight(line, " \t\n\v\f\r")
	s.logger.Debug("evaluate", "statement", statement, "result", result)
	return result, nil
}

// Execute sends the statement and returns without reading
func (s *Session) Execute(statement string) error {
	if err := s.send(statement); err != nil {
		return err
	}
	s.logger.Debug("execute", "statement", statement)
	return nil
}

func (s *Session) send(statement string) error {
	if _, err := s.w.WriteString(statement + s.terminator + "\n"); err != nil {
		return wrapIOError(err, "interpreter write")
	}
	if err := s.w.Flush(); err != nil {
		return wrapIOError(err, "interpreter write")
	}
	return nil
}
