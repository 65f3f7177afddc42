package quiz

import (
	"log/slog"

	"github.com/google/uuid"
)

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseAnswering Phase = iota // Collecting answers
	PhaseFinished               // All questions answered; result available
)

func (p Phase) String() string {
	switch p {
	case PhaseAnswering:
		return "answering"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is Answering(Index) or Finished. Index stays on the last question
// once finished.
type State struct {
	Phase Phase
	Index int
}

// Session is one quiz attempt. It is not safe for concurrent use; the UI
// drives it from a single event loop.
type Session struct {
	id        string
	current   int
	answers   []string
	completed bool
	log       *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for session events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSession creates a session in Answering(0) with every slot empty.
func NewSession(opts ...Option) *Session {
	s := &Session{
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	s.log.Debug("session started", "session", s.id)
	return s
}

func (s *Session) reset() {
	s.id = uuid.NewString()
	s.current = 0
	s.answers = make([]string, len(questions))
	s.completed = false
}

// ID identifies this attempt in logs. It changes on Restart.
func (s *Session) ID() string { return s.id }

// Current returns the index of the question being answered.
func (s *Session) Current() int { return s.current }

// Completed reports whether the last question has been advanced past.
func (s *Session) Completed() bool { return s.completed }

// State returns the session's position in the state machine.
func (s *Session) State() State {
	if s.completed {
		return State{Phase: PhaseFinished, Index: s.current}
	}
	return State{Phase: PhaseAnswering, Index: s.current}
}

// Answers returns a copy of the collected answers, one slot per question.
func (s *Session) Answers() []string {
	return append([]string(nil), s.answers...)
}

// Answer returns the answer recorded for question i, or "".
func (s *Session) Answer(i int) string {
	if i < 0 || i >= len(s.answers) {
		return ""
	}
	return s.answers[i]
}

// SelectAnswer records value for question index. The value is not checked
// against the question's options; unknown values simply score nothing.
// Indexes outside the question range are ignored.
func (s *Session) SelectAnswer(index int, value string) {
	if index < 0 || index >= len(s.answers) {
		s.log.Warn("answer index out of range", "session", s.id, "index", index)
		return
	}
	s.answers[index] = value
	s.log.Debug("answer selected", "session", s.id, "index", index, "value", value)
}

// CanAdvance reports whether Advance would move the session forward.
func (s *Session) CanAdvance() bool {
	return !s.completed && s.answers[s.current] != ""
}

// Advance moves to the next question, or finishes the session on the last
// one. It does nothing and returns false if the current slot is empty or the
// session is already finished.
func (s *Session) Advance() bool {
	if !s.CanAdvance() {
		return false
	}
	if s.current < len(questions)-1 {
		s.current++
		s.log.Debug("advanced", "session", s.id, "index", s.current)
		return true
	}
	s.completed = true
	s.log.Debug("session finished", "session", s.id)
	return true
}

// Restart returns the session to Answering(0) with every slot empty.
func (s *Session) Restart() {
	prev := s.id
	s.reset()
	s.log.Debug("session restarted", "session", s.id, "previous", prev)
}

// Scores scores the current answers.
func (s *Session) Scores() Scores {
	return Score(s.answers)
}

// Outcome returns the best-matching outcome for the current answers. It is
// meant for finished sessions but accepts partial answers.
func (s *Session) Outcome() (Outcome, error) {
	o, err := ComputeOutcome(s.answers)
	if err != nil {
		s.log.Error("outcome lookup failed", "session", s.id, "err", err)
		return Outcome{}, err
	}
	s.log.Debug("outcome computed", "session", s.id, "outcome", o.Name)
	return o, nil
}
