package ui

import (
	"showroom/internal/debug"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.form.SetWidth(m.formWidth())
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		// The form starts below the header line and its blank separator.
		msg.Y -= headerHeight
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd

	case FacetCommittedMsg:
		m.lastEvent = msg.Facet.Label() + " = " + msg.Value
		debug.Debug("form commit", "facet", msg.Facet.String(), "value", msg.Value, "matches", len(m.form.Matches()))
		return m, nil

	case FacetClearedMsg:
		m.lastEvent = msg.Facet.Label() + " cleared"
		debug.Debug("form clear", "facet", msg.Facet.String(), "selection", msg.Selection.String())
		return m, nil

	case inventoryLoadedMsg:
		return m, m.applyReload(msg)

	case toastTickMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
			m.toastIsError = false
		}
		return m, nil

	case spinner.TickMsg:
		if !m.reloadInFlight {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}
