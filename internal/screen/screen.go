package screen

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Screen is one page of the quiz UI.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that list their bindings in
// the footer.
type KeyHintProvider interface {
	KeyHints() []key.Binding
}

// StatusProvider is implemented by screens that show status text on the
// right of the header.
type StatusProvider interface {
	Status() string
}
