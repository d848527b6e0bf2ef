package render

import (
	"bytes"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts long-form markdown content into sanitized HTML for
// detail views. Content is editor-supplied, so the rendered output is
// passed through a UGC sanitizer before it leaves the API.
type Renderer struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
}

func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (r *Renderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return r.sanitizer.Sanitize(buf.String()), nil
}
