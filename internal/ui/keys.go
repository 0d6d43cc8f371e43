package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level shortcuts. Text keys belong to the
// focused field, so every global binding uses a modifier or function key.
type KeyMap struct {
	// Form
	NextField key.Binding
	PrevField key.Binding
	Suggest   key.Binding
	Commit    key.Binding
	Close     key.Binding

	// Actions
	Reset  key.Binding
	Copy   key.Binding
	Reload key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings for Showroom.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		// Suggest, Commit and Close mirror the SuggestionBox bindings for help.
		Suggest: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "browse suggestions"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close list"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset filters"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy selection"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "reload inventory"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "ctrl+_"),
			key.WithHelp("f1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Suggest, k.Commit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Suggest, k.Commit, k.Close},
		{k.Reset, k.Copy, k.Reload, k.Theme, k.Help, k.Quit},
	}
}
