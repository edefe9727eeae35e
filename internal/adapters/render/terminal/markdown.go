package terminal

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

const defaultMarkdownStyle = "dark"

// markdown renders narrative text with glamour. A renderer that fails to
// build or render falls back to the raw text.
type markdown struct {
	renderer *glamour.TermRenderer
}

func newMarkdown(style string, width int) markdown {
	if style == "" {
		style = defaultMarkdownStyle
	}
	if width <= 0 {
		width = defaultWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown{}
	}
	return markdown{renderer: renderer}
}

func (m markdown) render(text string) string {
	if m.renderer == nil {
		return text
	}

	out, err := m.renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(out, "\n")
}
