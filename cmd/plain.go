package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/l2quiz/internal/quiz"
)

// errInputClosed is returned when stdin ends before the last question.
var errInputClosed = errors.New("input closed before the quiz finished")

func newPlainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plain",
		Short: "Take the quiz in a line-oriented prompt",
		Long: `Take the quiz without the full-screen interface.

Each question is printed with numbered options. Answer with the option number
or its exact text. Useful for terminals without TUI support.`,
		Args: cobra.NoArgs,
		RunE: runPlain,
	}
}

func runPlain(cmd *cobra.Command, args []string) error {
	_, log, closeLog, err := prepare(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	sess := quiz.NewSession(quiz.WithLogger(log))
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	for {
		if err := playRound(sess, scanner, out); err != nil {
			return err
		}

		fmt.Fprintf(out, "\n%s? [y/N]: ", quiz.RestartLabel)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return nil
		}
		reply := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if reply != "y" && reply != "yes" {
			return nil
		}
		sess.Restart()
		fmt.Fprintln(out)
	}
}

// playRound asks every question of sess and prints the result.
func playRound(sess *quiz.Session, scanner *bufio.Scanner, out io.Writer) error {
	for !sess.Completed() {
		v := sess.AnsweringView()

		fmt.Fprintf(out, "── Question %d/%d ──\n", v.Number, v.Total)
		fmt.Fprintln(out, v.Text)
		for j, opt := range v.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
		}

		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return errInputClosed
		}

		answer, ok := resolveAnswer(scanner.Text(), v.Options)
		if !ok {
			fmt.Fprintf(out, "Please pick 1-%d to continue.\n\n", len(v.Options))
			continue
		}

		sess.SelectAnswer(sess.Current(), answer)
		sess.Advance()
		fmt.Fprintln(out)
	}

	res, err := sess.ResultView()
	if err != nil {
		return fmt.Errorf("compute result: %w", err)
	}
	fmt.Fprintf(out, "── %s ──\n", res.Title)
	fmt.Fprintln(out, res.Name)
	fmt.Fprintln(out, res.Description)
	return nil
}

// resolveAnswer maps input to one of options. It accepts a 1-based option
// number or the option text, ignoring case and surrounding space.
func resolveAnswer(input string, options []string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}
	for _, opt := range options {
		if strings.EqualFold(opt, input) {
			return opt, true
		}
	}
	return "", false
}
