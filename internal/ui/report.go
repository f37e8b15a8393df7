package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/gubarz/mdpp/internal/directive"
)

// FormatError renders err the way it is reported to the operator
func FormatError(err error) string {
	msg := err.Error()

	var e *goerrors.Error
	if errors.As(err, &e) {
		msg = e.Message
		if e.Source != nil {
			msg += ": " + e.Source.Error()
		}
	}
	return styles.Error.Render("ERROR:") + " " + msg
}

// ReportError writes the formatted error to w
func ReportError(w io.Writer, err error) {
	fmt.Fprintln(w, FormatError(err))
}

// FormatTable lists the directives in priority order
func FormatTable(table directive.Table) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(fmt.Sprintf("%-14s %-9s %-6s %s", "NAME", "OPEN", "CLOSE", "KIND")))
	b.WriteByte('\n')
	for _, d := range table {
		kind := "inline"
		closer := d.Close
		switch {
		case d.WholeLine():
			kind = "whole-line"
			closer = "-"
		case d.Symmetric():
			kind = "inline, symmetric"
		}
		fmt.Fprintf(&b, "%-14s %-9q %-6s %s\n", d.Kind, d.Open, closer, styles.Dim.Render(kind))
	}
	return b.String()
}
