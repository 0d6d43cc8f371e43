package ui

import (
	"fmt"
	"strings"

	"showroom/internal/facet"
	"showroom/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// headerHeight is the header line plus the blank line under it.
const headerHeight = 2

// View implements tea.Model.
func (m *App) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	formView := m.form.View()
	var side string
	if m.showHelp {
		side = m.renderHelp()
	} else {
		side = m.renderResults()
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, formView, "  ", side))
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m *App) renderHeader() string {
	title := "SHOWROOM"
	if m.version != "" {
		title = fmt.Sprintf("SHOWROOM v%s", m.version)
	}
	status := fmt.Sprintf("%d vehicles", m.form.Cascade().Len())
	if m.stats.Skipped > 0 {
		status += fmt.Sprintf(" • %d skipped", m.stats.Skipped)
	}
	if m.stats.Source != "" {
		status += " • " + m.stats.Source
	}
	if m.reloadInFlight {
		status += " " + m.spinner.View()
	}
	return styleAppHeader().Render(title) + " " + styleHeaderStatus().Render(status)
}

func (m *App) resultsWidth() int {
	w := m.width - m.formWidth() - 2
	if m.width <= 0 || w < 20 {
		return 40
	}
	return w
}

func (m *App) renderResults() string {
	width := m.resultsWidth()
	matches := facet.SortRecords(m.form.Matches())

	var lines []string
	title := styleResultsTitle().Render("Results")
	count := styleResultsCount().Render(fmt.Sprintf(" %d of %d vehicles", len(matches), m.form.Cascade().Len()))
	lines = append(lines, title+count)

	if sel := m.form.Selection(); !sel.IsEmpty() {
		lines = append(lines, styleResultsMuted().Render(wordwrap.String(sel.String(), width)))
	}
	lines = append(lines, "")

	if len(matches) == 0 {
		lines = append(lines, styleResultsMuted().Render("No vehicles match the selected filters."))
	}
	shown := min(len(matches), m.resultsLimit)
	for _, r := range matches[:shown] {
		lines = append(lines, styleResultRow().Render(wordwrap.String(report.MatchOf(r).Line(), width)))
	}
	if more := len(matches) - shown; more > 0 {
		lines = append(lines, styleResultsMuted().Render(fmt.Sprintf("+%d more", more)))
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m *App) renderHelp() string {
	return styleHelpTitle().Render("Keys") + "\n\n" + m.help.View(m.keys)
}
