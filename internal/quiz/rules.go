package quiz

import (
	"fmt"
	"strings"
)

// MatchKind selects how a rule compares its text against an answer.
type MatchKind int

const (
	MatchExact    MatchKind = iota // answer == Text
	MatchContains                  // strings.Contains(answer, Text)
)

func (k MatchKind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchContains:
		return "contains"
	default:
		return fmt.Sprintf("MatchKind(%d)", int(k))
	}
}

// Rule awards one point to Outcome when an answer matches Text.
type Rule struct {
	Match   MatchKind
	Text    string
	Outcome string
}

// Matches reports whether answer satisfies the rule.
func (r Rule) Matches(answer string) bool {
	switch r.Match {
	case MatchExact:
		return answer == r.Text
	case MatchContains:
		return strings.Contains(answer, r.Text)
	default:
		return false
	}
}

// RuleTable holds the scoring rules for each question, indexed by position.
// Every rule of a question is checked, so one answer may score several outcomes.
type RuleTable [][]Rule

// DefaultRules is the fixed scoring table.
//
// The question 4 rules compare exactly against "Low risk", "Medium risk" and
// "High risk", which are shorter than the selectable options. They never fire.
// Keep them as they are: switching to substring matching changes winners.
var DefaultRules = RuleTable{
	{
		{MatchExact, "Low transaction fees", Polygon},
		{MatchExact, "Fast confirmation times", Arbitrum},
		{MatchExact, "Strong security guarantees", Optimism},
	},
	{
		{MatchContains, "libraries", Arbitrum},
		{MatchContains, "tutorials", Optimism},
		{MatchContains, "basic", Polygon},
	},
	{
		{MatchExact, "Fully decentralized", Optimism},
		{MatchExact, "Some centralization is acceptable", Arbitrum},
	},
	{
		{MatchExact, "Gaming / NFTs", Polygon},
		{MatchExact, "DeFi / lending", Arbitrum},
		{MatchExact, "Enterprise / data‑heavy apps", ZkSync},
	},
	{
		{MatchExact, "Low risk", Optimism},
		{MatchExact, "Medium risk", Arbitrum},
		{MatchExact, "High risk", Polygon},
	},
}

// Validate checks the table against the given questions and outcomes.
func (t RuleTable) Validate(qs []Question, outs []Outcome) error {
	if len(t) != len(qs) {
		return fmt.Errorf("%w: %d rule sets for %d questions", ErrInvalidFixtures, len(t), len(qs))
	}

	names := make(map[string]bool, len(outs))
	for _, o := range outs {
		if names[o.Name] {
			return fmt.Errorf("%w: duplicate outcome %q", ErrInvalidFixtures, o.Name)
		}
		names[o.Name] = true
	}

	for i, q := range qs {
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: question %d has no options", ErrInvalidFixtures, i)
		}
		for _, r := range t[i] {
			if !names[r.Outcome] {
				return fmt.Errorf("%w: question %d rule %q: %w", ErrInvalidFixtures, i, r.Text, ErrUnknownOutcome)
			}
		}
	}
	return nil
}

// ValidateFixtures checks DefaultRules against the fixed questions and outcomes.
func ValidateFixtures() error {
	return DefaultRules.Validate(questions, outcomes)
}
