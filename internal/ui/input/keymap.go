package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Up     key.Binding
	Down   key.Binding
	Home   key.Binding
	End    key.Binding
	Accept key.Binding
	Open   key.Binding
	Back   key.Binding
	Tab    key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// TODO make configurable.
var Default = Map{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Focus up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Focus down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "First option"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "Last option"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Select"),
	),
	Open: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "Open menu"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Tab"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
}
