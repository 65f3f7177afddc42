package quiz

import "errors"

var (
	// ErrUnknownOutcome means a score key has no matching outcome record.
	ErrUnknownOutcome = errors.New("unknown outcome")

	// ErrInvalidFixtures means the question, outcome and rule data disagree.
	ErrInvalidFixtures = errors.New("invalid quiz fixtures")
)
