package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Play   key.Binding
	Next   key.Binding
	Prev   key.Binding
	First  key.Binding
	Last   key.Binding
	Faster key.Binding
	Slower key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Prev, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Prev, k.Next},
		{k.First, k.Last},
		{k.Slower, k.Faster},
		{k.Help, k.Quit},
	}
}

var keys = keyMap{
	Play:   key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
	Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
	Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
	First:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	Last:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
	Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}
