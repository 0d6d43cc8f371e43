package ui

import (
	"os"
	"testing"

	"showroom/internal/inventory"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, records []inventory.Record) *App {
	t.Helper()
	src := &inventory.MockSource{Records: records}
	app, err := NewApp(Config{Source: src, ResultsLimit: 2})
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	app.Init()
	return app
}

// settleApp runs cmd and feeds form and selector events back into the app.
// Timer-driven commands (blink, blur grace, toasts) are never run.
func settleApp(m *App, cmd tea.Cmd) []tea.Msg {
	var out []tea.Msg
	for cmd != nil {
		msg := cmd()
		out = append(out, msg)
		switch msg.(type) {
		case SuggestionCommittedMsg, SuggestionClearedMsg, FacetCommittedMsg, FacetClearedMsg, inventoryLoadedMsg:
			_, cmd = m.Update(msg)
		default:
			cmd = nil
		}
	}
	return out
}

func appKey(m *App, msg tea.KeyMsg) []tea.Msg {
	_, cmd := m.Update(msg)
	if msg.Type == tea.KeyCtrlR || msg.Type == tea.KeyCtrlY || msg.Type == tea.KeyCtrlT || msg.Type == tea.KeyCtrlL {
		return nil
	}
	return settleApp(m, cmd)
}

func appType(m *App, text string) {
	for _, r := range text {
		appKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
