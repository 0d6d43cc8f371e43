// Demo program to visually test the SuggestionBox component
package main

import (
	"fmt"
	"os"

	"showroom/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// boxTop is the screen row of the input border: title, margin, blank line
// and the field label come first.
const boxTop = 4

type model struct {
	box    ui.SuggestionBox
	events []string
	quit   bool
}

func initialModel() model {
	options := []string{
		"Chevrolet",
		"Fiat",
		"Ford",
		"Honda",
		"Hyundai",
		"Jeep",
		"Nissan",
		"Renault",
		"Toyota",
		"Volkswagen",
	}

	box := ui.NewSuggestionBox("brand", options).
		WithPlaceholder("Type a brand...").
		WithWidth(40).
		WithMaxVisible(5)

	return model{box: box}
}

func (m model) Init() tea.Cmd {
	return m.box.Focus()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "tab":
			if m.box.Focused() {
				return m, m.box.Blur()
			}
			return m, m.box.Focus()
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case ui.SuggestionCommittedMsg:
		m.events = append(m.events, "committed "+msg.Value)

	case ui.SuggestionClearedMsg:
		m.events = append(m.events, "cleared")
	}

	var cmd tea.Cmd
	m.box, cmd = m.box.Update(msg)
	return m, cmd
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	line := msg.Y - boxTop
	switch {
	case msg.Action == tea.MouseActionMotion:
		if i := m.box.OptionAt(line); i >= 0 {
			m.box.HoverOption(i)
		}
		return m, nil
	case msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft:
		return m, nil
	}
	if i := m.box.OptionAt(line); i >= 0 {
		var cmd tea.Cmd
		m.box, cmd = m.box.ClickOption(i)
		return m, cmd
	}
	if m.box.InputAt(line) {
		return m, m.box.Focus()
	}
	return m, m.box.Blur()
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	eventStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))
)

func (m model) View() string {
	if m.quit {
		return ""
	}

	s := titleStyle.Render("SuggestionBox Demo")
	s += "\n\n"
	s += "Brand:\n"
	s += m.box.View()
	s += "\n\n"
	s += fmt.Sprintf("State: %s  Value: %q\n", m.box.State(), m.box.Value())

	start := max(len(m.events)-5, 0)
	for _, ev := range m.events[start:] {
		s += eventStyle.Render("• "+ev) + "\n"
	}

	s += helpStyle.Render("\ntype to filter • ↑↓ move • Enter select • Esc close • Tab blur/focus • click works too • ctrl+c quit")
	return s
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
