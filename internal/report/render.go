package report

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// Output formats accepted by NewRenderer.
const (
	FormatRich  = "rich"
	FormatLight = "light"
	FormatPlain = "plain"
)

// NewRenderer returns a markdown renderer for format. Plain output, unknown
// glamour styles and render failures fall back to word-wrapped source text.
func NewRenderer(format string, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style := strings.ToLower(strings.TrimSpace(format))
	switch style {
	case "", FormatRich, "dark":
		style = "dark"
	case FormatPlain:
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}
