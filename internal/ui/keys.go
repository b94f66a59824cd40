package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tuiselect/internal/dropdown"
)

// keyMap holds the form-level bindings. The focused dropdown's own bindings
// are shown next to them in the help bar.
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Save      key.Binding
	History   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	field dropdown.KeyMap
}

func newKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		field: dropdown.DefaultKeyMap(),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.field.Toggle, k.Next, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return append(k.field.FullHelp(),
		[]key.Binding{k.Next, k.Prev},
		[]key.Binding{k.Save, k.History},
		[]key.Binding{k.Help, k.Quit},
	)
}
