package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"showroom/internal/debug"
	"showroom/internal/facet"
	"showroom/internal/inventory"

	tea "github.com/charmbracelet/bubbletea"
)

const reloadTimeout = 10 * time.Second

func reloadInventoryCmd(src inventory.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
		defer cancel()

		idx, stats, err := inventory.Load(ctx, src)
		return inventoryLoadedMsg{index: idx, stats: stats, err: err}
	}
}

func (m *App) startReload() tea.Cmd {
	if m.reloadInFlight || m.source == nil {
		return nil
	}
	m.reloadInFlight = true
	return tea.Batch(m.spinner.Tick, reloadInventoryCmd(m.source))
}

// applyReload swaps the loaded records under the form. The selection is kept;
// values that vanished are flagged rather than cleared.
func (m *App) applyReload(msg inventoryLoadedMsg) tea.Cmd {
	m.reloadInFlight = false
	if msg.err != nil {
		debug.Debug("reload failed", "source", m.source.Describe(), "err", msg.err)
		return m.showToast(fmt.Sprintf("Reload failed: %v", msg.err), true)
	}

	m.form.Reload(msg.index)
	m.stats = msg.stats

	text := fmt.Sprintf("Reloaded %d vehicles", msg.stats.Loaded)
	if stale := m.form.Cascade().Stale(); len(stale) > 0 {
		names := make([]string, 0, len(stale))
		for _, f := range stale {
			names = append(names, strings.ToLower(f.Label()))
		}
		text += " - no longer available: " + strings.Join(names, ", ")
		return m.showToast(text, true)
	}
	return m.showToast(text, false)
}

func staleFacets(c *facet.Cascade) map[facet.Facet]bool {
	out := map[facet.Facet]bool{}
	for _, f := range c.Stale() {
		out[f] = true
	}
	return out
}
