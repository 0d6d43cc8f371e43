package main

import (
	"fmt"
	"io"
	"time"

	"showroom/internal/facet"
	"showroom/internal/ui/theme"

	"github.com/charmbracelet/lipgloss"
)

// ExitSummary holds what is printed once the TUI leaves the alt screen.
type ExitSummary struct {
	Version   string
	Selection facet.Selection
	Matches   int
	Total     int
	Duration  time.Duration
}

// printExitSummary prints the session line and the final selection so it
// stays in the scrollback after the form closes.
func printExitSummary(w io.Writer, summary ExitSummary) {
	t := theme.Current()
	appStyle := lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	textStyle := lipgloss.NewStyle().Foreground(t.Text)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)

	versionStr := ""
	if summary.Version != "" {
		versionStr = mutedStyle.Render(fmt.Sprintf(" v%s", summary.Version))
	}
	sessionStr := mutedStyle.Render(fmt.Sprintf(" • %s session", formatDuration(summary.Duration)))

	selection := "No filters"
	if !summary.Selection.IsEmpty() {
		selection = summary.Selection.String()
	}
	counts := accentStyle.Render(fmt.Sprintf("%d of %d vehicles", summary.Matches, summary.Total))

	_, _ = fmt.Fprintln(w, appStyle.Render("Showroom")+versionStr+sessionStr)
	_, _ = fmt.Fprintln(w, textStyle.Render(selection)+mutedStyle.Render(" • ")+counts)
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		if secs == 0 {
			return fmt.Sprintf("%dm", mins)
		}
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, mins)
}
