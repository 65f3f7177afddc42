package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/l2quiz/internal/quiz"
)

// execute runs the CLI with args against a config path that does not exist,
// so defaults apply and no user config is read.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--config", cfg))

	err := root.Execute()
	return out.String(), errOut.String(), err
}

// referenceInput answers strong security, libraries and tutorials, fully
// decentralized, enterprise, low risk.
const referenceInput = "3\n1\n1\n3\n1\n"

func optimism(t *testing.T) quiz.Outcome {
	t.Helper()
	o, ok := quiz.OutcomeByName(quiz.Optimism)
	require.True(t, ok)
	return o
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "l2quiz (devel)\n", out)
}

func TestPlain_FullRun(t *testing.T) {
	out, _, err := execute(t, referenceInput+"n\n", "plain")
	require.NoError(t, err)

	assert.Contains(t, out, "── Question 1/5 ──")
	assert.Contains(t, out, "── Question 5/5 ──")
	assert.Contains(t, out, quiz.ResultTitle)
	assert.Contains(t, out, optimism(t).Description)
}

func TestPlain_RejectsEmptyAndOutOfRange(t *testing.T) {
	out, _, err := execute(t, "\n9\n"+referenceInput, "plain")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Please pick 1-"))
	assert.Equal(t, 3, strings.Count(out, "── Question 1/5 ──"))
	assert.Contains(t, out, quiz.Optimism)
}

func TestPlain_AcceptsOptionText(t *testing.T) {
	q, ok := quiz.QuestionAt(0)
	require.True(t, ok)

	input := strings.ToUpper(q.Options[2]) + "\n1\n1\n3\n1\n"
	out, _, err := execute(t, input, "plain")
	require.NoError(t, err)
	assert.Contains(t, out, optimism(t).Description)
}

func TestPlain_Restart(t *testing.T) {
	out, _, err := execute(t, referenceInput+"y\n"+referenceInput+"n\n", "plain")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "── Question 1/5 ──"))
	assert.Equal(t, 2, strings.Count(out, optimism(t).Description))
}

func TestPlain_InputClosed(t *testing.T) {
	_, _, err := execute(t, "3\n1\n", "plain")
	require.ErrorIs(t, err, errInputClosed)
}

func TestScore_ReferenceAnswers(t *testing.T) {
	out, _, err := execute(t, "", "score",
		"--answer", "3", "--answer", "1", "--answer", "1", "--answer", "3", "--answer", "1",
		"--scores")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, quiz.Optimism, lines[0])
	assert.Equal(t, optimism(t).Description, lines[1])
	assert.Contains(t, out, "Optimism   3")
	assert.Contains(t, out, "Arbitrum   1")
	assert.Contains(t, out, "zkSync     1")
}

func TestScore_WithoutScoresFlag(t *testing.T) {
	out, _, err := execute(t, "", "score", "--answer", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "  Optimism")
}

func TestScore_UnlistedTextScoresNothing(t *testing.T) {
	out, _, err := execute(t, "", "score", "--answer", "cheap, please", "--answer", "no idea", "--scores")
	require.NoError(t, err)

	// All zero, so the first outcome in resolution order wins.
	assert.True(t, strings.HasPrefix(out, quiz.Optimism+"\n"))
	assert.Contains(t, out, "Optimism   0")
}

func TestScore_TooManyAnswers(t *testing.T) {
	args := []string{"score"}
	for range quiz.QuestionCount + 1 {
		args = append(args, "--answer", "1")
	}
	_, _, err := execute(t, "", args...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "the quiz has 5 questions")
}

func TestScore_RequiresAnswer(t *testing.T) {
	_, _, err := execute(t, "", "score")
	require.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "", "score", "--answer", "1", "--log-level", "loud")
	require.Error(t, err)
}

func TestDebugLogsGoToStderr(t *testing.T) {
	_, errOut, err := execute(t, "", "score", "--answer", "1", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "scored answers")
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "l2quiz.log")
	_, errOut, err := execute(t, "", "score", "--answer", "1", "--log-level", "debug", "--log-file", path)
	require.NoError(t, err)
	assert.NotContains(t, errOut, "scored answers")
	assert.FileExists(t, path)
}

func TestResolveAnswer(t *testing.T) {
	options := []string{"Low fees", "Strong security"}

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"1", "Low fees", true},
		{" 2 ", "Strong security", true},
		{"strong SECURITY", "Strong security", true},
		{"0", "", false},
		{"3", "", false},
		{"", "", false},
		{"   ", "", false},
		{"cheap", "", false},
	}
	for _, tt := range tests {
		got, ok := resolveAnswer(tt.input, options)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
