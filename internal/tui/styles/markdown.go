package styles

import (
	"github.com/charmbracelet/glamour/v2"
)

// RenderMarkdown renders md with the current theme, wrapped at width.
// On renderer failure the raw markdown is returned.
func RenderMarkdown(md string, width int) string {
	t := CurrentTheme()
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(t.S().Markdown),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
