package ui

import "github.com/charmbracelet/bubbles/key"

// MainKeyMap holds the bindings active on the main screen.
type MainKeyMap struct {
	Quit key.Binding
	Help key.Binding
	Menu key.Binding
}

// HelpKeyMap holds the bindings active on the help screen.
type HelpKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

// KeyMap groups the per-state key maps.
type KeyMap struct {
	Main MainKeyMap
	Help HelpKeyMap
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Main: MainKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m/space", "action menu"),
		),
	},
	Help: HelpKeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to main"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	},
}

// ShortHelp implements help.KeyMap.
func (k MainKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Menu, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MainKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ShortHelp implements help.KeyMap.
func (k HelpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k HelpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
