// Package theme provides the semantic color palettes used by the showroom UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme is a named palette of semantic colors. Every color adapts to light
// and dark terminals.
type Theme struct {
	Name string

	Primary   lipgloss.AdaptiveColor // focused borders, header background
	Secondary lipgloss.AdaptiveColor // highlighted option, field labels
	Accent    lipgloss.AdaptiveColor // counts, committed values

	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor // stale facet marker
	Success lipgloss.AdaptiveColor

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor

	Background          lipgloss.AdaptiveColor
	BackgroundSecondary lipgloss.AdaptiveColor

	BorderNormal  lipgloss.AdaptiveColor
	BorderFocused lipgloss.AdaptiveColor
	BorderDim     lipgloss.AdaptiveColor
}
