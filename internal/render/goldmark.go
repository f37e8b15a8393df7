package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Goldmark buffers the whole document and converts it to HTML on Close.
// Raw HTML is passed through since the directive tags are emitted as HTML.
type Goldmark struct {
	buf    bytes.Buffer
	dst    io.Writer
	engine goldmark.Markdown
}

// NewGoldmark creates an in-process renderer writing HTML to dst. An empty
// extension list enables GFM, linkify and task lists.
func NewGoldmark(dst io.Writer, extensions []string) *Goldmark {
	return &Goldmark{
		dst: dst,
		engine: goldmark.New(
			goldmark.WithExtensions(collectExtensions(extensions)...),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Write buffers preprocessed text
func (g *Goldmark) Write(b []byte) (int, error) {
	return g.buf.Write(b)
}

// Close renders the buffered document into the destination
func (g *Goldmark) Close() error {
	if err := g.engine.Convert(g.buf.Bytes(), g.dst); err != nil {
		return wrapRendererError(err, Builtin)
	}
	g.buf.Reset()
	return nil
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}
	return extenders
}
