package question

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/l2quiz/internal/quiz"
	"github.com/abhisek/l2quiz/internal/router"
	"github.com/abhisek/l2quiz/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "result" }
func (s *stubScreen) Title() string                           { return "Result" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestionScreen() (*QuestionScreen, *quiz.Session, *int) {
	finished := 0
	s := quiz.NewSession()
	q := New(s, func() screen.Screen {
		finished++
		return &stubScreen{}
	})
	return q, s, &finished
}

func TestQuestionScreen_EnterGatedUntilSelected(t *testing.T) {
	q, s, _ := testQuestionScreen()

	var scr screen.Screen = q
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("enter without a selection should do nothing")
	}
	if s.Current() != 0 {
		t.Errorf("Current = %d, want 0", s.Current())
	}
}

func TestQuestionScreen_CursorAloneDoesNotAnswer(t *testing.T) {
	q, s, _ := testQuestionScreen()

	q.Update(specialKey(tea.KeyDown))
	q.Update(specialKey(tea.KeyEnter))

	if s.Answer(0) != "" || s.Current() != 0 {
		t.Error("moving the cursor should not answer the question")
	}
}

func TestQuestionScreen_SelectAndAdvance(t *testing.T) {
	q, s, _ := testQuestionScreen()

	q.Update(keyPress('2'))
	if s.Answer(0) != "Fast confirmation times" {
		t.Errorf("Answer(0) = %q", s.Answer(0))
	}

	q.Update(specialKey(tea.KeyEnter))
	if s.Current() != 1 {
		t.Fatalf("Current = %d, want 1", s.Current())
	}
	if q.radio.Value != "" {
		t.Errorf("radio should reset for the next question, got %q", q.radio.Value)
	}
	if !strings.Contains(q.View(80, 30), "developer tooling") {
		t.Error("expected second question in view")
	}
}

func TestQuestionScreen_SelectWithCursor(t *testing.T) {
	q, s, _ := testQuestionScreen()

	q.Update(keyPress('j'))
	q.Update(keyPress('j'))
	q.Update(specialKey(tea.KeySpace))

	if s.Answer(0) != "Strong security guarantees" {
		t.Errorf("Answer(0) = %q", s.Answer(0))
	}
}

func TestQuestionScreen_FinishReplacesScreen(t *testing.T) {
	q, s, finished := testQuestionScreen()

	var cmd tea.Cmd
	for i := 0; i < quiz.QuestionCount; i++ {
		q.Update(keyPress('1'))
		_, cmd = q.Update(specialKey(tea.KeyEnter))
	}

	if !s.Completed() {
		t.Fatal("expected session to be completed")
	}
	if cmd == nil {
		t.Fatal("expected a command after the last question")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if *finished != 1 {
		t.Errorf("onFinish called %d times, want 1", *finished)
	}
}

func TestQuestionScreen_AdvanceLabel(t *testing.T) {
	q, s, _ := testQuestionScreen()

	if !strings.Contains(q.View(80, 30), "Next") {
		t.Error("expected Next label on the first question")
	}
	for i := 0; i < quiz.QuestionCount-1; i++ {
		s.SelectAnswer(i, "x")
		s.Advance()
	}
	q.syncRadio()
	if !strings.Contains(q.View(80, 30), "See Result") {
		t.Error("expected See Result label on the last question")
	}
}

func TestQuestionScreen_View(t *testing.T) {
	q, _, _ := testQuestionScreen()

	view := q.View(80, 30)
	for _, want := range []string{"Question 1 of 5", "Low transaction fees", "choose an answer"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuestionScreen_KeyHints(t *testing.T) {
	q, _, _ := testQuestionScreen()

	hints := q.KeyHints()
	if len(hints) == 0 {
		t.Fatal("expected key hints")
	}
	next := hints[len(hints)-2]
	if next.Enabled() {
		t.Error("next hint should be disabled before an answer is selected")
	}

	q.Update(keyPress('1'))
	hints = q.KeyHints()
	if !hints[len(hints)-2].Enabled() {
		t.Error("next hint should be enabled after selecting")
	}
}

func TestQuestionScreen_Status(t *testing.T) {
	q, _, _ := testQuestionScreen()
	if !strings.HasPrefix(q.Status(), "1/5") {
		t.Errorf("Status = %q", q.Status())
	}
}

func TestQuestionScreen_IgnoresNonKeyMessages(t *testing.T) {
	q, s, _ := testQuestionScreen()
	_, cmd := q.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd != nil || s.Current() != 0 {
		t.Error("non-key messages should be ignored")
	}
}
