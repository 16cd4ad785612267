package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the preview key bindings with built-in help text.
type KeyMap struct {
	Quit   key.Binding
	Menu   key.Binding
	Escape key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open page"),
		),
	}
}

// hints returns the bindings shown in the footer for the menu state.
func (k KeyMap) hints(open bool) []key.Binding {
	if open {
		return []key.Binding{k.Up, k.Down, k.Select, k.Escape, k.Quit}
	}
	return []key.Binding{k.Menu, k.Quit}
}
