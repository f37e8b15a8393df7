package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	goerrors "github.com/goliatone/go-errors"

	"github.com/gubarz/mdpp/internal/directive"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "plain error",
			err:      errors.New("no such file"),
			expected: "no such file",
		},
		{
			name: "document error",
			err: goerrors.New("doc.md:2: meta directive \"author\" needs a name and a value separated by a space", goerrors.CategoryBadInput).
				WithTextCode("META_MALFORMED"),
			expected: "doc.md:2: meta directive",
		},
		{
			name:     "wrapped system error",
			err:      goerrors.Wrap(errors.New("broken pipe"), goerrors.CategoryExternal, "interpreter write"),
			expected: "interpreter write: broken pipe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatError(tt.err)
			if !strings.Contains(got, "ERROR:") {
				t.Errorf("expected ERROR: prefix, got %q", got)
			}
			if !strings.Contains(got, tt.expected) {
				t.Errorf("expected %q in %q", tt.expected, got)
			}
		})
	}
}

func TestFormatTable(t *testing.T) {
	out := FormatTable(directive.Builtin())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header and 5 directives, got %d lines:\n%s", len(lines), out)
	}
	order := []string{"shell", "literal-block", "title", "meta", "header-toggle"}
	for i, name := range order {
		if !strings.HasPrefix(lines[i+1], name) {
			t.Errorf("expected line %d to list %s, got %q", i+1, name, lines[i+1])
		}
	}
	if !strings.Contains(lines[3], "whole-line") {
		t.Errorf("expected title to be whole-line, got %q", lines[3])
	}
}

func TestPreviewModel(t *testing.T) {
	content := "line one\nline two\n"
	var m tea.Model = newPreviewModel("doc.md", content)

	if got := m.View(); got != "loading..." {
		t.Errorf("expected loading view before sizing, got %q", got)
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	view := m.View()
	if !strings.Contains(view, "line two") {
		t.Errorf("expected content in view, got %q", view)
	}
	if !strings.Contains(view, "doc.md") {
		t.Errorf("expected title in view, got %q", view)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg")
	}
}
