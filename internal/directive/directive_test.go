package directive

import (
	"errors"
	"strings"
	"testing"
)

func TestFindUnescaped(t *testing.T) {
	tests := []struct {
		name     string
		haystack string
		needle   string
		expected int
	}{
		{name: "first occurrence", haystack: "abc)", needle: ")", expected: 3},
		{name: "skips escaped occurrence", haystack: `a\)b)`, needle: ")", expected: 4},
		{name: "all escaped", haystack: `\)\)`, needle: ")", expected: -1},
		{name: "consecutive escaped then plain", haystack: `\)\))`, needle: ")", expected: 4},
		{name: "absent", haystack: "abc", needle: ")", expected: -1},
		{name: "empty haystack", haystack: "", needle: ")", expected: -1},
		{name: "at start", haystack: "$(x", needle: "$(", expected: 0},
		{name: "multi-byte needle after escape", haystack: `\$(x $(y`, needle: "$(", expected: 5},
		{name: "empty needle", haystack: "abc", needle: "", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindUnescaped(tt.haystack, tt.needle)
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestFindUnescapedManyEscapes(t *testing.T) {
	haystack := strings.Repeat(`\)`, 100000)
	if got := FindUnescaped(haystack+")", ")"); got != len(haystack) {
		t.Errorf("expected %d, got %d", len(haystack), got)
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no backslash", input: "plain text", expected: "plain text"},
		{name: "delimiter", input: `a\)b`, expected: "a)b"},
		{name: "any byte", input: `\n\q`, expected: "nq"},
		{name: "escaped backslash", input: `\\`, expected: `\`},
		{name: "non-overlapping", input: `\\\)`, expected: `\)`},
		{name: "shell open", input: `\$\(x`, expected: "$(x"},
		{name: "trailing backslash kept", input: `a\`, expected: `a\`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Unescape(tt.input); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	shell := Directive{Open: "$(", Close: ")", Kind: Shell}
	literal := Directive{Open: "$$", Close: "$$", Kind: LiteralBlock}

	tests := []struct {
		name     string
		d        Directive
		rest     string
		content  string
		end      int
		unclosed bool
	}{
		{name: "simple", d: shell, rest: "echo hi) tail", content: "echo hi", end: 7},
		{name: "right trimmed", d: shell, rest: "echo hi  )", content: "echo hi", end: 9},
		{name: "non-ASCII space not trimmed", d: shell, rest: "echo hi\u00a0) x", content: "echo hi\u00a0", end: 9},
		{name: "nested balances to outer close", d: shell, rest: "echo $(echo x)) tail", content: "echo $(echo x)", end: 14},
		{name: "doubly nested", d: shell, rest: "a $(b $(c))) d", content: "a $(b $(c))", end: 11},
		{name: "escaped close skipped", d: shell, rest: `echo \) x)`, content: `echo \) x`, end: 9},
		{name: "escaped open not balanced", d: shell, rest: `echo \$(x) y)`, content: `echo \$(x`, end: 9},
		{name: "sibling stops at own close", d: shell, rest: "echo a) and $(echo b)", content: "echo a", end: 6},
		{name: "unbalanced open over-extends", d: shell, rest: "echo '$(') tail) rest", content: "echo '$(') tail", end: 15},
		{name: "unclosed", d: shell, rest: "echo hi", unclosed: true},
		{name: "nested unclosed", d: shell, rest: "echo $(x)", unclosed: true},
		{name: "symmetric first close wins", d: literal, rest: "a $(b) $$ tail $$", content: "a $(b)", end: 7},
		{name: "symmetric unclosed", d: literal, rest: "a b", unclosed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, end, err := Extract(tt.d, tt.rest)
			if tt.unclosed {
				if !errors.Is(err, ErrUnclosed) {
					t.Errorf("expected ErrUnclosed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if content != tt.content {
				t.Errorf("expected content %q, got %q", tt.content, content)
			}
			if end != tt.end {
				t.Errorf("expected end %d, got %d", tt.end, end)
			}
		})
	}
}

func TestTableOrder(t *testing.T) {
	table := Builtin()

	tests := []struct {
		name  string
		line  string
		kind  Kind
		match bool
	}{
		{name: "title before toggle", line: "%title My Doc", kind: Title, match: true},
		{name: "meta before toggle", line: "%meta author Jane", kind: Meta, match: true},
		{name: "bare toggle", line: "%", kind: HeaderToggle, match: true},
		{name: "title without space is toggle", line: "%title", kind: HeaderToggle, match: true},
		{name: "no whole-line directive", line: "text %title", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := table.MatchWholeLine(tt.line)
			if ok != tt.match {
				t.Fatalf("expected match %v, got %v", tt.match, ok)
			}
			if ok && d.Kind != tt.kind {
				t.Errorf("expected %s, got %s", tt.kind, d.Kind)
			}
		})
	}
}

func TestMatchDelimiter(t *testing.T) {
	table := Builtin()

	tests := []struct {
		text     string
		expected string
		match    bool
	}{
		{text: "$(x", expected: "$(", match: true},
		{text: ") y", expected: ")", match: true},
		{text: "$$", expected: "$$", match: true},
		{text: "%title x", expected: "%title ", match: true},
		{text: "%x", expected: "%", match: true},
		{text: "$x", match: false},
		{text: "n", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := table.MatchDelimiter(tt.text)
			if ok != tt.match || got != tt.expected {
				t.Errorf("expected (%q, %v), got (%q, %v)", tt.expected, tt.match, got, ok)
			}
		})
	}
}
