package question

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/l2quiz/internal/quiz"
	"github.com/abhisek/l2quiz/internal/router"
	"github.com/abhisek/l2quiz/internal/screen"
	"github.com/abhisek/l2quiz/internal/ui/components"
)

// QuestionScreen shows the current question of a session and collects
// its answer.
type QuestionScreen struct {
	session  *quiz.Session
	radio    components.RadioGroup
	onFinish func() screen.Screen
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)

// New creates a QuestionScreen for s. When the session finishes, the screen
// replaces itself with the one produced by onFinish.
func New(s *quiz.Session, onFinish func() screen.Screen) *QuestionScreen {
	q := &QuestionScreen{session: s, onFinish: onFinish}
	q.syncRadio()
	return q
}

func (q *QuestionScreen) syncRadio() {
	v := q.session.AnsweringView()
	q.radio = components.NewRadioGroup(v.Options, v.Selected)
}

func (q *QuestionScreen) Init() tea.Cmd {
	return nil
}

func (q *QuestionScreen) Title() string {
	return "Find your Layer‑2"
}

func (q *QuestionScreen) Status() string {
	return fmt.Sprintf("%d/%d  ", q.session.Current()+1, quiz.QuestionCount)
}

func (q *QuestionScreen) KeyHints() []key.Binding {
	next := components.KeyNext
	next.SetHelp("enter", q.session.AnsweringView().AdvanceLabel)
	next.SetEnabled(q.session.CanAdvance())
	return []key.Binding{
		components.KeyUp,
		components.KeyDown,
		components.KeySelect,
		components.KeyPick,
		next,
		components.KeyQuit,
	}
}

func (q *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); !ok {
		return q, nil
	}

	var changed bool
	q.radio, changed = q.radio.Update(msg)
	if changed {
		q.session.SelectAnswer(q.session.Current(), q.radio.Value)
		return q, nil
	}

	_, cmd, pressed := q.advanceButton().Update(msg)
	if pressed {
		return q, cmd
	}
	return q, nil
}

// advanceButton is only active once the current question has an answer.
func (q *QuestionScreen) advanceButton() components.Button {
	v := q.session.AnsweringView()
	return components.NewButton(v.AdvanceLabel, v.CanAdvance, components.KeyNext, q.advance)
}

func (q *QuestionScreen) advance() tea.Cmd {
	if !q.session.Advance() {
		return nil
	}
	if q.session.Completed() {
		next := q.onFinish()
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
	q.syncRadio()
	return nil
}
