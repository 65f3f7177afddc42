package components

import "charm.land/bubbles/v2/key"

// Key bindings shared by the quiz screens.
var (
	KeyUp = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
	KeyDown = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
	KeySelect = key.NewBinding(
		key.WithKeys("space", " ", "x"),
		key.WithHelp("space", "select"),
	)
	KeyPick = key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-3", "pick"),
	)
	KeyNext = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "next"),
	)
	KeyRestart = key.NewBinding(
		key.WithKeys("enter", "r"),
		key.WithHelp("enter/r", "take the quiz again"),
	)
	KeyContinue = key.NewBinding(
		key.WithKeys("enter", "space", " "),
		key.WithHelp("enter", "start"),
	)
	KeyQuit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	)
)
