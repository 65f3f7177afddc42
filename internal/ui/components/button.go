package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/l2quiz/internal/ui/theme"
)

// Button is a styled button pressed through its key binding. An inactive
// button renders dimmed and ignores presses.
type Button struct {
	Label   string
	Active  bool
	Binding key.Binding
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label string, active bool, binding key.Binding, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Active:  active,
		Binding: binding,
		OnPress: onPress,
	}
}

// Update handles key events. The bool reports whether the button was pressed.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd, bool) {
	if !b.Active {
		return b, nil, false
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !key.Matches(kmsg, b.Binding) {
		return b, nil, false
	}
	if b.OnPress == nil {
		return b, nil, true
	}
	return b, b.OnPress(), true
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
