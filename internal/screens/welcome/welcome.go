package welcome

import (
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/l2quiz/internal/quiz"
	"github.com/abhisek/l2quiz/internal/router"
	"github.com/abhisek/l2quiz/internal/screen"
	"github.com/abhisek/l2quiz/internal/ui/components"
	"github.com/abhisek/l2quiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	taglineAt    = 500 * time.Millisecond
	hintAt       = 1000 * time.Millisecond
)

type tickMsg time.Time

// WelcomeScreen shows the banner and hands over to the first question on
// any key.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) KeyHints() []key.Binding {
	return []key.Binding{components.KeyContinue, components.KeyQuit}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= hintAt || w.transitioned {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	first := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: first}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{RenderBanner(width)}

	if w.elapsed >= taglineAt {
		sections = append(sections, "",
			lipgloss.NewStyle().
				Foreground(theme.Text).
				Bold(true).
				Render("Which rollup fits you? Five questions to find out."),
			theme.Hint.Render(strings.Join(outcomeNames(), " · ")),
		)
	}

	if w.elapsed >= hintAt {
		sections = append(sections, "", theme.Hint.Render("press any key to start"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func outcomeNames() []string {
	var names []string
	for _, o := range quiz.Outcomes() {
		names = append(names, o.Name)
	}
	return names
}
