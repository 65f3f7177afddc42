package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/l2quiz/internal/quiz"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a fixed list of answers",
		Long: `Score answers without prompting and print the recommended network.

Pass --answer once per question, in order. Each value is an option number or
the option text; any other text is scored as given.`,
		Example: `  l2quiz score --answer 3 --answer 1 --answer 1 --answer 3 --answer 1 --scores`,
		Args:    cobra.NoArgs,
		RunE:    runScore,
	}
	cmd.Flags().StringArray("answer", nil, "Answer for the next question (repeat once per question)")
	cmd.Flags().Bool("scores", false, "Also print the per-outcome score vector")
	_ = cmd.MarkFlagRequired("answer")
	return cmd
}

func runScore(cmd *cobra.Command, args []string) error {
	raw, _ := cmd.Flags().GetStringArray("answer")
	showScores, _ := cmd.Flags().GetBool("scores")

	if len(raw) > quiz.QuestionCount {
		return fmt.Errorf("got %d answers, the quiz has %d questions", len(raw), quiz.QuestionCount)
	}

	_, log, closeLog, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	answers := make([]string, len(raw))
	for i, a := range raw {
		q, _ := quiz.QuestionAt(i)
		if opt, ok := resolveAnswer(a, q.Options); ok {
			answers[i] = opt
		} else {
			answers[i] = a
		}
	}

	scores := quiz.Score(answers)
	outcome, err := quiz.ComputeOutcome(answers)
	if err != nil {
		return fmt.Errorf("compute outcome: %w", err)
	}
	log.Debug("scored answers", "answers", len(answers), "outcome", outcome.Name)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, outcome.Name)
	fmt.Fprintln(out, outcome.Description)
	if showScores {
		fmt.Fprintln(out)
		for _, s := range scores {
			fmt.Fprintf(out, "  %-10s %d\n", s.Name, s.Points)
		}
	}
	return nil
}
