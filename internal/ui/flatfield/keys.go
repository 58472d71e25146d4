package flatfield

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of a field
type KeyMap struct {
	Edit   key.Binding // begin editing
	Return key.Binding // return key while editing
	Done   key.Binding // leave the field, like tapping outside it
	Tap    key.Binding // tap the accessory icon
	Paste  key.Binding // insert the clipboard while editing
}

// DefaultKeyMap returns the default field bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "edit"),
		),
		Return: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "return"),
		),
		Done: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done"),
		),
		Tap: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "tap icon"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Done, k.Tap}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Edit, k.Return, k.Done, k.Tap, k.Paste},
	}
}
