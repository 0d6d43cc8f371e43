package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint defines a key hint for the footer bar.
// These are intentionally shorter than the KeyMap help text.
type footerHint struct {
	key  string
	desc string
}

var globalFooterHints = []footerHint{
	{"⇥", "Field"},
	{"↑↓", "Suggest"},
	{"⏎", "Select"},
	{"^R", "Reset"},
	{"^Y", "Copy"},
	{"F1", "Help"},
	{"^C", "Quit"},
}

// renderFooter renders the pill-style key hints, or the current toast in
// their place.
func (m *App) renderFooter() string {
	if m.toast != "" {
		if m.toastIsError {
			return styleToastError().Render(m.toast)
		}
		return styleToastSuccess().Render(m.toast)
	}

	right := ""
	if m.lastEvent != "" {
		right = styleFooterMuted().Render("Last: " + m.lastEvent)
	}
	rightWidth := lipgloss.Width(right)

	hints := trimHintsToFit(globalFooterHints, m.width-rightWidth-4)
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	left := strings.Join(parts, "  ")
	if right == "" {
		return left
	}
	spacing := max(m.width-lipgloss.Width(left)-rightWidth, 2)
	return left + strings.Repeat(" ", spacing) + right
}

// keyPill renders a single key hint as a pill with description.
func keyPill(key, desc string) string {
	return styleKeyPill().Render(" "+key+" ") + " " + styleKeyDesc().Render(desc)
}

// trimHintsToFit drops hints from the end until they fit. A non-positive
// width means the terminal size is unknown and everything is kept.
func trimHintsToFit(hints []footerHint, availableWidth int) []footerHint {
	if availableWidth <= 0 {
		return hints
	}
	for len(hints) > 0 && renderHintsWidth(hints) > availableWidth {
		hints = hints[:len(hints)-1]
	}
	return hints
}

// renderHintsWidth calculates the visual width of rendered hints.
func renderHintsWidth(hints []footerHint) int {
	var parts []string
	for _, h := range hints {
		parts = append(parts, keyPill(h.key, h.desc))
	}
	return lipgloss.Width(strings.Join(parts, "  "))
}
