package render

import (
	"bytes"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// Renderer converts AI markdown into dashboard HTML. Fenced code blocks
// are highlighted per language tag; unrecognized languages fall back to
// plain text.
type Renderer struct {
	md goldmark.Markdown
}

func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("dracula"),
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(false),
					),
				),
			),
		),
	}
}

// Render converts markdown and wraps it in the dark-theme template.
// Malformed input degrades to an escaped <pre>; rendering never fails.
func (r *Renderer) Render(markdown string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		log.Err(err).Msg("Markdown conversion failed, falling back to preformatted text")
		return wrap(fmt.Sprintf("<pre>%s</pre>", html.EscapeString(markdown)))
	}
	return wrap(buf.String())
}

// Page wraps trusted HTML fragments (status placeholders) in the same
// template without markdown conversion.
func (r *Renderer) Page(content string) string {
	return wrap(content)
}

func wrap(content string) string {
	return fmt.Sprintf(pageTemplate, content)
}
