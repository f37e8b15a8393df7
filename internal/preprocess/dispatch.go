package preprocess

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/gubarz/mdpp/internal/directive"
	"github.com/gubarz/mdpp/internal/interpreter"
)

const (
	literalOpenTag  = "<pre>"
	literalCloseTag = "</pre>"
	headOpenTag     = "<head>"
	headCloseTag    = "</head>"
)

// processLine expands one trimmed line into out, followed by a newline
func (p *Processor) processLine(st *State, line string, out *bufio.Writer) error {
	rest := line

	if d, ok := p.table.MatchWholeLine(rest); ok {
		if err := p.handle(st, d, rest[len(d.Open):], out); err != nil {
			return err
		}
		rest = ""
	}

	if st.InCodeBlock && rest != "" {
		out.WriteString(rest)
		rest = ""
	}

	for rest != "" {
		if d, ok := p.table.MatchInline(rest); ok {
			rest = rest[len(d.Open):]
			content, end, err := directive.Extract(d, rest)
			if err != nil {
				if errors.Is(err, directive.ErrUnclosed) {
					return unclosedError(d)
				}
				return err
			}
			if err := p.handle(st, d, directive.Unescape(content), out); err != nil {
				return err
			}
			rest = rest[end+len(d.Close):]
			continue
		}

		if rest[0] == '\\' {
			if delim, ok := p.table.MatchDelimiter(rest[1:]); ok {
				out.WriteString(delim)
				rest = rest[1+len(delim):]
				continue
			}
		}

		out.WriteByte(rest[0])
		rest = rest[1:]
	}

	if err := out.WriteByte('\n'); err != nil {
		return wrapIOError(err, "write output")
	}
	return nil
}

// handle runs the action bound to d with its content
func (p *Processor) handle(st *State, d directive.Directive, content string, out *bufio.Writer) error {
	p.logger.Debug("directive", "kind", d.Kind, "content", content)

	switch d.Kind {
	case directive.Shell:
		result, err := st.Interp.Evaluate(content)
		if err != nil {
			return err
		}
		out.WriteString(result)

	case directive.LiteralBlock:
		out.WriteString(literalOpenTag)
		out.WriteString(content)
		out.WriteString(literalCloseTag)

	case directive.Title:
		fmt.Fprintf(out, "<title>%s</title>", content)
		return st.Interp.Execute(interpreter.Bind("title", content))

	case directive.Meta:
		name, value, ok := strings.Cut(content, " ")
		if !ok {
			return malformedMetaError(content)
		}
		fmt.Fprintf(out, "<meta name=\"%s\" content=\"%s\">", name, value)
		return st.Interp.Execute(interpreter.Bind(name, value))

	case directive.HeaderToggle:
		st.HeaderOpen = !st.HeaderOpen
		if st.HeaderOpen {
			out.WriteString(headOpenTag)
		} else {
			out.WriteString(headCloseTag)
		}

	default:
		return unknownKindError(d)
	}
	return nil
}
