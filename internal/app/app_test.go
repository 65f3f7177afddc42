package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/l2quiz/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// send delivers msg and feeds any router message produced by the returned
// command back into the model, the way the Bubble Tea runtime would.
func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	updated, cmd := m.Update(msg)
	m = updated.(AppModel)
	for cmd != nil {
		next := cmd()
		if next == nil {
			break
		}
		if _, ok := next.(tea.QuitMsg); ok {
			break
		}
		updated, cmd = m.Update(next)
		m = updated.(AppModel)
	}
	return m
}

func TestApp_FullRunAndRestart(t *testing.T) {
	m := newAppModel(Options{})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.router.Active().Title() != "Find your Layer‑2" {
		t.Fatalf("expected question screen first, got %q", m.router.Active().Title())
	}

	// Strong security, libraries and tutorials, fully decentralized,
	// enterprise, low risk.
	for _, pick := range []rune{'3', '1', '1', '3', '1'} {
		m = send(t, m, keyPress(pick))
		m = send(t, m, specialKey(tea.KeyEnter))
	}

	if !m.session.Completed() {
		t.Fatal("expected session to be completed")
	}
	if m.router.Active().Title() != "Result" {
		t.Fatalf("expected result screen, got %q", m.router.Active().Title())
	}
	view := m.render()
	if !strings.Contains(view, quiz.Optimism) {
		t.Error("expected Optimism in result view")
	}

	m = send(t, m, keyPress('r'))
	if m.session.Completed() || m.session.Current() != 0 {
		t.Error("expected session to restart")
	}
	if m.router.Depth() != 1 {
		t.Errorf("router depth = %d, want 1", m.router.Depth())
	}
	if m.router.Active().Title() == "Result" {
		t.Error("expected question screen after restart")
	}
}

func TestApp_SplashFirst(t *testing.T) {
	m := newAppModel(Options{Splash: true})
	if m.router.Active().Title() != "" {
		t.Fatalf("expected welcome screen first, got %q", m.router.Active().Title())
	}

	m = send(t, m, keyPress(' '))
	if m.router.Active().Title() != "Find your Layer‑2" {
		t.Errorf("expected question screen after splash, got %q", m.router.Active().Title())
	}
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := newAppModel(Options{})
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected too-small message")
	}
}

func TestApp_ViewHasFrame(t *testing.T) {
	m := newAppModel(Options{AltScreen: true})
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if !m.View().AltScreen {
		t.Error("expected alt screen")
	}
	view := m.render()
	for _, want := range []string{"L2 Quiz", "1/5", "Question 1 of 5", "ctrl+c"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
