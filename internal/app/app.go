package app

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/l2quiz/internal/quiz"
	"github.com/abhisek/l2quiz/internal/router"
	"github.com/abhisek/l2quiz/internal/screen"
	"github.com/abhisek/l2quiz/internal/screens/question"
	"github.com/abhisek/l2quiz/internal/screens/result"
	"github.com/abhisek/l2quiz/internal/screens/welcome"
	"github.com/abhisek/l2quiz/internal/ui/components"
	"github.com/abhisek/l2quiz/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Logger    *slog.Logger
	AltScreen bool
	Splash    bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	session   *quiz.Session
	altScreen bool
	width     int
	height    int
}

// newAppModel wires one quiz session to the question and result screens.
func newAppModel(opts Options) AppModel {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	sess := quiz.NewSession(quiz.WithLogger(log))

	var newQuestion func() screen.Screen
	newResult := func() screen.Screen {
		return result.New(sess, newQuestion)
	}
	newQuestion = func() screen.Screen {
		return question.New(sess, newResult)
	}

	var first screen.Screen
	if opts.Splash {
		first = welcome.New(newQuestion)
	} else {
		first = newQuestion()
	}

	return AppModel{
		router:    router.New(first, log.WithGroup("ui")),
		session:   sess,
		altScreen: opts.AltScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if key.Matches(msg, components.KeyQuit) {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = m.altScreen
	return v
}

// render draws the frame around the active screen.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	hints := []key.Binding{components.KeyQuit}
	if active != nil {
		title = active.Title()
		if p, ok := active.(screen.KeyHintProvider); ok {
			hints = p.KeyHints()
		}
		if p, ok := active.(screen.StatusProvider); ok {
			status = p.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
