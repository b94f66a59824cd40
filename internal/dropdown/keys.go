package dropdown

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the keys the control reacts to while focused
type KeyMap struct {
	Toggle key.Binding // open, or commit the highlighted option and close
	Down   key.Binding
	Up     key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the listbox bindings: enter/space, arrows, esc
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "open/choose"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Up, k.Down, k.Close}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Close}, {k.Up, k.Down}}
}
