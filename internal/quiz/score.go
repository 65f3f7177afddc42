package quiz

import "fmt"

// OutcomeScore is the accumulated score of one outcome.
type OutcomeScore struct {
	Name   string
	Points int
}

// Scores is a score vector in outcome resolution order.
type Scores []OutcomeScore

// NewScores returns a zeroed score vector for the given outcomes.
func NewScores(outs []Outcome) Scores {
	s := make(Scores, len(outs))
	for i, o := range outs {
		s[i] = OutcomeScore{Name: o.Name}
	}
	return s
}

// Get returns the points for name, or 0 if name is not scored.
func (s Scores) Get(name string) int {
	for _, e := range s {
		if e.Name == name {
			return e.Points
		}
	}
	return 0
}

func (s Scores) add(name string) bool {
	for i := range s {
		if s[i].Name == name {
			s[i].Points++
			return true
		}
	}
	return false
}

// Winner returns the name with the highest score. Only a strictly greater
// score replaces the current best, so ties go to the earliest entry.
func (s Scores) Winner() string {
	if len(s) == 0 {
		return ""
	}
	best := s[0]
	for _, e := range s[1:] {
		if e.Points > best.Points {
			best = e
		}
	}
	return best.Name
}

// Score applies the table to answers. Answers without a rule set score nothing,
// as do rules naming an outcome absent from outs.
func (t RuleTable) Score(answers []string, outs []Outcome) Scores {
	scores := NewScores(outs)
	for i, answer := range answers {
		if i >= len(t) {
			break
		}
		for _, r := range t[i] {
			if r.Matches(answer) {
				scores.add(r.Outcome)
			}
		}
	}
	return scores
}

// Score applies DefaultRules to answers.
func Score(answers []string) Scores {
	return DefaultRules.Score(answers, outcomes)
}

// ComputeOutcome scores answers and returns the winning outcome record.
func ComputeOutcome(answers []string) (Outcome, error) {
	return resolve(Score(answers).Winner())
}

func resolve(name string) (Outcome, error) {
	o, ok := OutcomeByName(name)
	if !ok {
		return Outcome{}, fmt.Errorf("resolve %q: %w", name, ErrUnknownOutcome)
	}
	return o, nil
}
