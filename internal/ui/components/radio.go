package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/l2quiz/internal/ui/theme"
)

// RadioGroup is a single-choice option list. Moving the cursor does not
// change Value; only an explicit select or number key does.
type RadioGroup struct {
	Options []string
	Cursor  int
	Value   string
}

// NewRadioGroup creates a radio group with value preselected. The cursor
// starts on the selected option, or the first one.
func NewRadioGroup(options []string, value string) RadioGroup {
	r := RadioGroup{Options: options, Value: value}
	for i, opt := range options {
		if opt == value {
			r.Cursor = i
			break
		}
	}
	return r
}

// Update handles navigation and selection. It reports whether Value changed.
func (r RadioGroup) Update(msg tea.Msg) (RadioGroup, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(r.Options) == 0 {
		return r, false
	}

	switch {
	case key.Matches(kmsg, KeyUp):
		if r.Cursor > 0 {
			r.Cursor--
		}
	case key.Matches(kmsg, KeyDown):
		if r.Cursor < len(r.Options)-1 {
			r.Cursor++
		}
	case key.Matches(kmsg, KeySelect):
		return r.choose(r.Cursor)
	case key.Matches(kmsg, KeyPick):
		n, err := strconv.Atoi(kmsg.String())
		if err != nil || n < 1 || n > len(r.Options) {
			return r, false
		}
		r.Cursor = n - 1
		return r.choose(r.Cursor)
	}

	return r, false
}

func (r RadioGroup) choose(i int) (RadioGroup, bool) {
	prev := r.Value
	r.Value = r.Options[i]
	return r, r.Value != prev
}

// View renders the option list.
func (r RadioGroup) View() string {
	var b strings.Builder
	for i, opt := range r.Options {
		prefix := "  "
		if i == r.Cursor {
			prefix = "▸ "
		}
		mark := "( )"
		if opt == r.Value {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %d. %s", prefix, mark, i+1, opt)

		switch {
		case opt == r.Value:
			b.WriteString(theme.Checked.Render(line))
		case i == r.Cursor:
			b.WriteString(theme.Cursor.Render(line))
		default:
			b.WriteString(theme.Unchecked.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
