package ui

import (
	"showroom/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Styles are built on every render so a theme switch applies immediately.

func styleAppHeader() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Current().Background).
		Background(theme.Current().Primary).
		Bold(true).
		Padding(0, 1)
}

func styleHeaderStatus() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleSpinner() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent)
}

func styleResultsTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary).Bold(true)
}

func styleResultsCount() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Accent)
}

func styleResultsMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted).Italic(true)
}

func styleResultRow() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Text)
}

func styleHelpTitle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Primary).Bold(true)
}

// Footer bar styles

func styleKeyPill() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(theme.Current().Primary).
		Foreground(theme.Current().Background).
		Bold(true)
}

func styleKeyDesc() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleFooterMuted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().TextMuted)
}

func styleToastSuccess() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Success).Bold(true)
}

func styleToastError() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.Current().Error).Bold(true)
}
