package ui

import (
	"strings"

	"showroom/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// suggestionInputHeight is the rendered height of the bordered text field.
const suggestionInputHeight = 3

// View implements tea.Model.
func (s SuggestionBox) View() string {
	var b strings.Builder

	// s.Width is the visual width including the border.
	inputStyle := styleSuggestionInput().Width(max(s.Width-2, 1))
	if s.focused {
		inputStyle = styleSuggestionInputFocused().Width(max(s.Width-2, 1))
	}
	b.WriteString(inputStyle.Render(s.textInput.View()))

	if s.state == SuggestionOpen && len(s.filteredOptions) > 0 {
		b.WriteString("\n")
		b.WriteString(s.renderOptions())
	}
	return b.String()
}

func (s SuggestionBox) visibleWindow() (start, end int) {
	start = s.scrollOffset
	end = min(start+s.MaxVisible, len(s.filteredOptions))
	return start, end
}

func (s SuggestionBox) renderOptions() string {
	var b strings.Builder

	if s.scrollOffset > 0 {
		b.WriteString(styleSuggestionHint().Render("  ▲ more above"))
		b.WriteString("\n")
	}

	start, end := s.visibleWindow()
	width := max(s.Width-4, 10)
	for i := start; i < end; i++ {
		label := ansi.Truncate(s.filteredOptions[i], width-4, "…")
		if i == s.highlightIndex {
			b.WriteString(styleSuggestionHighlight().Width(width).Render("▸ " + label))
		} else {
			b.WriteString(styleSuggestionOption().Width(width).Render("  " + label))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if end < len(s.filteredOptions) {
		b.WriteString("\n")
		b.WriteString(styleSuggestionHint().Render("  ▼ more below"))
	}
	return b.String()
}

// Height returns the number of lines View currently renders.
func (s SuggestionBox) Height() int {
	return lipgloss.Height(s.View())
}

// OptionAt maps a line offset, relative to the top of the rendered box, to
// an index in the filtered options. It returns -1 for the text field, the
// scroll indicators and anything outside an open list.
func (s SuggestionBox) OptionAt(line int) int {
	if s.state != SuggestionOpen || len(s.filteredOptions) == 0 {
		return -1
	}
	row := line - suggestionInputHeight
	if s.scrollOffset > 0 {
		row--
	}
	start, end := s.visibleWindow()
	if row < 0 || start+row >= end {
		return -1
	}
	return start + row
}

// InputAt reports whether a line offset falls on the text field.
func (s SuggestionBox) InputAt(line int) bool {
	return line >= 0 && line < suggestionInputHeight
}

func styleSuggestionInput() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderDim).
		Padding(0, 1)
}

func styleSuggestionInputFocused() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Current().BorderFocused).
		Padding(0, 1)
}

func styleSuggestionOption() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Text).
		PaddingLeft(2)
}

func styleSuggestionHighlight() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Secondary).
		Bold(true).
		PaddingLeft(2)
}

func styleSuggestionHint() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().TextMuted)
}
