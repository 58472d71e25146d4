package demo

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/muurk/flatform/internal/ui/flatfield"
)

// KeyMap defines the demo's buttons plus the field's own bindings
type KeyMap struct {
	Accessory key.Binding
	Display   key.Binding
	Error     key.Binding
	Help      key.Binding
	Quit      key.Binding

	Field flatfield.KeyMap
}

// DefaultKeyMap returns the default demo bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Accessory: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "accessory"),
		),
		Display: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "display state"),
		),
		Error: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "error"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Field: flatfield.DefaultKeyMap(),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Field.Edit, k.Accessory, k.Display, k.Error, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Accessory, k.Display, k.Error},
		{k.Field.Edit, k.Field.Return, k.Field.Done, k.Field.Tap},
		{k.Help, k.Quit},
	}
}

// forceQuit is the only way out while letters go to the field
var forceQuit = key.NewBinding(
	key.WithKeys("ctrl+c"),
	key.WithHelp("ctrl+c", "quit"),
)

// editingKeyMap is shown while the field has focus and letters go to it
type editingKeyMap struct {
	field flatfield.KeyMap
	quit  key.Binding
}

func (k editingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.field.Return, k.field.Done, k.field.Tap, k.quit}
}

func (k editingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
