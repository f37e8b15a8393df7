// Package directive recognizes directive delimiters in a line of text.
//
// Delimiters preceded by a backslash are escaped: they are skipped while
// searching and turned into literal text by Unescape.
package directive

import "strings"

// Kind identifies the action bound to a directive
type Kind int

const (
	Shell Kind = iota
	LiteralBlock
	Title
	Meta
	HeaderToggle
)

// String returns the name used in listings and log records
func (k Kind) String() string {
	switch k {
	case Shell:
		return "shell"
	case LiteralBlock:
		return "literal-block"
	case Title:
		return "title"
	case Meta:
		return "meta"
	case HeaderToggle:
		return "header-toggle"
	default:
		return "unknown"
	}
}

// Directive is a recognized markup span. A directive without a Close
// delimiter is a whole-line directive and claims the rest of the line.
type Directive struct {
	Open  string
	Close string
	Kind  Kind
}

// WholeLine reports whether the directive has no close delimiter
func (d Directive) WholeLine() bool {
	return d.Close == ""
}

// Symmetric reports whether open and close are the same token
func (d Directive) Symmetric() bool {
	return d.Open == d.Close
}

// Table is a priority-ordered list of directives. Specific prefixes must
// precede general ones: the first matching open wins.
type Table []Directive

// Builtin returns the directive table every document is processed with.
// %title and %meta are listed before the bare % header toggle, which would
// otherwise shadow them.
func Builtin() Table {
	return Table{
		{Open: "$(", Close: ")", Kind: Shell},
		{Open: "$$", Close: "$$", Kind: LiteralBlock},
		{Open: "%title ", Kind: Title},
		{Open: "%meta ", Kind: Meta},
		{Open: "%", Kind: HeaderToggle},
	}
}

// MatchWholeLine returns the first whole-line directive whose open prefixes line
func (t Table) MatchWholeLine(line string) (Directive, bool) {
	for _, d := range t {
		if d.WholeLine() && strings.HasPrefix(line, d.Open) {
			return d, true
		}
	}
	return Directive{}, false
}

// MatchInline returns the first inline directive whose open prefixes text
func (t Table) MatchInline(text string) (Directive, bool) {
	for _, d := range t {
		if !d.WholeLine() && strings.HasPrefix(text, d.Open) {
			return d, true
		}
	}
	return Directive{}, false
}

// MatchDelimiter returns the first open or close delimiter of any directive
// in the table that prefixes text. It is used to resolve a backslash escape
// in front of a delimiter.
func (t Table) MatchDelimiter(text string) (string, bool) {
	for _, d := range t {
		if strings.HasPrefix(text, d.Open) {
			return d.Open, true
		}
		if d.Close != "" && strings.HasPrefix(text, d.Close) {
			return d.Close, true
		}
	}
	return "", false
}
