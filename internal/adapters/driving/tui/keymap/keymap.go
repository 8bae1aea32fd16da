// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the previous view.
	Back key.Binding

	// Up moves the map cursor north or navigates up in a list.
	Up key.Binding

	// Down moves the map cursor south or navigates down in a list.
	Down key.Binding

	// Left moves the map cursor west.
	Left key.Binding

	// Right moves the map cursor east.
	Right key.Binding

	// Select confirms the cursor position or a selection.
	Select key.Binding

	// Place arms the map for placing a new placemark.
	Place key.Binding

	// Filter cycles the marker category filter.
	Filter key.Binding

	// Tab switches panes within the place detail view.
	Tab key.Binding

	// Comment focuses the comment input on the reviews pane.
	Comment key.Binding

	// Rate submits a rating on the reviews pane.
	Rate key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "north"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "south"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "west"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "east"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Place: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "place"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		Rate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rate"),
		),
	}
}

// MapHelp returns keybindings shown under the map view.
func (k *KeyMap) MapHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Place, k.Filter, k.Quit}
}

// DetailHelp returns keybindings shown under the place detail view.
func (k *KeyMap) DetailHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Comment, k.Rate, k.Back}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
