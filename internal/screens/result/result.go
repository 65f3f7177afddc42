package result

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/l2quiz/internal/quiz"
	"github.com/abhisek/l2quiz/internal/router"
	"github.com/abhisek/l2quiz/internal/screen"
	"github.com/abhisek/l2quiz/internal/ui/components"
	"github.com/abhisek/l2quiz/internal/ui/theme"
)

// ResultScreen displays the winning outcome of a finished session.
type ResultScreen struct {
	session   *quiz.Session
	view      quiz.ResultView
	err       error
	onRestart func() screen.Screen
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. Restarting resets s and replaces this screen
// with the one produced by onRestart.
func New(s *quiz.Session, onRestart func() screen.Screen) *ResultScreen {
	v, err := s.ResultView()
	return &ResultScreen{
		session:   s,
		view:      v,
		err:       err,
		onRestart: onRestart,
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Result"
}

func (r *ResultScreen) KeyHints() []key.Binding {
	return []key.Binding{components.KeyRestart, components.KeyQuit}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	_, cmd, _ := r.restartButton().Update(msg)
	return r, cmd
}

func (r *ResultScreen) restartButton() components.Button {
	return components.NewButton(quiz.RestartLabel, true, components.KeyRestart, r.restart)
}

func (r *ResultScreen) restart() tea.Cmd {
	r.session.Restart()
	next := r.onRestart()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (r *ResultScreen) View(width, height int) string {
	w := min(72, width-4)
	inner := w - 6

	var b strings.Builder

	if r.err != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(inner).
			Foreground(theme.Primary).
			Render("Could not determine a result: " + r.err.Error()))
	} else {
		b.WriteString(theme.Title.Render(r.view.Title))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Render(r.view.Name))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Width(inner).Render(r.view.Description))
	}
	b.WriteString("\n\n")
	b.WriteString(r.restartButton().View())

	card := theme.Card.Width(w).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
