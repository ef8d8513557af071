package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Less     key.Binding
	More     key.Binding
	Empty    key.Binding
	Full     key.Binding
	Symbols  key.Binding
	Template key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Less: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "less"),
		),
		More: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "more"),
		),
		Empty: key.NewBinding(
			key.WithKeys("home", "0"),
			key.WithHelp("0", "empty"),
		),
		Full: key.NewBinding(
			key.WithKeys("end", "$"),
			key.WithHelp("$", "full"),
		),
		Symbols: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "next glyphs"),
		),
		Template: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "template"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Less, k.More, k.Symbols, k.Template, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Less, k.More, k.Empty, k.Full},
		{k.Symbols, k.Template, k.Quit},
	}
}
