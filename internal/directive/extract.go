package directive

import (
	"errors"
	"strings"
)

// asciiSpace is the set of bytes TrimRight removes. Non-ASCII spaces such as
// U+00A0 are document text.
const asciiSpace = " \t\n\v\f\r"

// TrimRight removes trailing ASCII whitespace from s
func TrimRight(s string) string {
	return strings.TrimRight(s, asciiSpace)
}

// ErrUnclosed is returned when no matching close delimiter exists
var ErrUnclosed = errors.New("directive was not closed")

// Extract consumes the body of an inline directive whose open delimiter has
// already been consumed from rest. It returns the right-trimmed content and
// the offset in rest of the close delimiter that terminates it; the caller
// consumes the close.
//
// When open and close differ, every unescaped open found in the content
// pushes the end out to the next unescaped close. This is a flat
// count-and-extend scan rather than a stacked parser, so an open without a
// close of its own inside the content swallows the following close on the
// line. Symmetric delimiters are never balanced: the first unescaped close
// ends the content.
func Extract(d Directive, rest string) (string, int, error) {
	end := FindUnescaped(rest, d.Close)
	if end < 0 {
		return "", 0, ErrUnclosed
	}

	if !d.Symmetric() {
		cursor := 0
		for {
			idx := FindUnescaped(rest[cursor:end], d.Open)
			if idx < 0 {
				break
			}
			cursor += idx + len(d.Open)

			tail := end + len(d.Close)
			next := FindUnescaped(rest[tail:], d.Close)
			if next < 0 {
				return "", 0, ErrUnclosed
			}
			end = tail + next
		}
	}

	return TrimRight(rest[:end]), end, nil
}
