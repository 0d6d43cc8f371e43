package ui

import (
	"fmt"

	"showroom/internal/config"
	"showroom/internal/debug"
	"showroom/internal/ui/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is swapped out in tests.
var clipboardWrite = clipboard.WriteAll

// handleKeyMsg processes global shortcuts and hands everything else to the form.
func (m *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Help takes precedence; while it is shown only help and quit keys work.
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Close):
			m.showHelp = false
			m.help.ShowAll = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		m.help.ShowAll = true
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.form.Reset()
		m.lastEvent = ""
		return m, m.showToast("Filters reset", false)
	case key.Matches(msg, m.keys.Copy):
		return m, m.handleCopyKey()
	case key.Matches(msg, m.keys.Reload):
		return m, m.startReload()
	case key.Matches(msg, m.keys.Theme):
		return m, m.handleThemeKey()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// handleCopyKey copies the committed selection to the clipboard.
func (m *App) handleCopyKey() tea.Cmd {
	sel := m.form.Selection()
	if sel.IsEmpty() {
		return m.showToast("Nothing selected to copy", true)
	}
	text := sel.String()
	if err := clipboardWrite(text); err != nil {
		debug.Debug("clipboard write failed", "err", err)
		return m.showToast(fmt.Sprintf("Copy failed: %v", err), true)
	}
	return m.showToast("Copied: "+text, false)
}

// handleThemeKey cycles the palette and persists the choice.
func (m *App) handleThemeKey() tea.Cmd {
	name := theme.CycleTheme()
	if name == "" {
		return nil
	}
	m.spinner.Style = styleSpinner()
	if err := config.SaveTheme(name); err != nil {
		debug.Debug("save theme failed", "theme", name, "err", err)
	}
	return m.showToast("Theme: "+name, false)
}
