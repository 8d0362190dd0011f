package gallery

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the gallery's keyboard shortcuts.
type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Picker  key.Binding
	Help    key.Binding
	Yank    key.Binding
	Buy     key.Binding
	Sell    key.Binding
	Disable key.Binding
	Tab     key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next preview"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "previous preview"),
		),
		Picker: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "find preview"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy preview"),
		),
		Buy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "press buy"),
		),
		Sell: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "press sell"),
		),
		Disable: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle buttons enabled"),
		),
		Tab: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle active tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Picker, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Picker},
		{k.Buy, k.Sell, k.Disable, k.Tab},
		{k.Yank, k.Help, k.Quit},
	}
}
