package preview

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the preview's key bindings.
type KeyMap struct {
	Quit       key.Binding
	Pause      key.Binding
	Step       key.Binding
	Brightness key.Binding
	Help       key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause"),
		),
		Step: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "step while paused"),
		),
		Brightness: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "cycle brightness"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Brightness, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Step},
		{k.Brightness, k.Help, k.Quit},
	}
}
