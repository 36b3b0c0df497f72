package markdown

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Converter renders Markdown body text into an HTML fragment. It is
// stateless apart from the configured engine, so one instance serves
// a whole build.
type Converter struct {
	md goldmark.Markdown
}

// New builds a converter with GFM tables and fenced code blocks,
// syntax highlighting in the given chroma style (unknown languages
// degrade to plain pre/code), hard line breaks on single newlines,
// and raw HTML passed through unsanitized.
func New(highlightStyle string) *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(highlightStyle),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithUnsafe(),
			),
		),
	}
}

// Convert is a pure function of its input: the same Markdown text
// always yields the same HTML fragment.
func (c *Converter) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", errors.Wrap(err, "converting markdown")
	}
	return buf.String(), nil
}

// Verify runs a probe conversion so a broken conversion path is
// caught at startup, before any file is touched.
func (c *Converter) Verify() error {
	_, err := c.Convert("# probe\n")
	return err
}
