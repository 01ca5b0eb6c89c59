package tui

import "charm.land/bubbles/v2/key"

// KeyMap holds the bindings of the alert viewer.
type KeyMap struct {
	Dismiss key.Binding
	Replay  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the built-in bindings. Dismiss stands in for a tap
// on terminals without mouse reporting.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Dismiss: key.NewBinding(
			key.WithKeys("esc", "enter", "space"),
			key.WithHelp("esc", "dismiss"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "show again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dismiss, k.Replay, k.Quit}
}
