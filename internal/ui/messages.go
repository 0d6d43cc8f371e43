package ui

import (
	"time"

	"showroom/internal/inventory"

	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 2 * time.Second

type inventoryLoadedMsg struct {
	index *inventory.Index
	stats inventory.Stats
	err   error
}

type toastTickMsg struct {
	seq int
}

func scheduleToastClear(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastTickMsg{seq: seq}
	})
}
