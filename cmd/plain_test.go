package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/futureme/internal/catalog"
	"github.com/abhisek/futureme/internal/quiz"
)

func plainRun(t *testing.T, input string) (*quiz.Controller, string, error) {
	t.Helper()
	ctrl := quiz.NewController(catalog.Questions(), nil, nil)
	var out bytes.Buffer
	err := playPlain(ctrl, strings.NewReader(input), &out)
	return ctrl, out.String(), err
}

func TestPlayPlain_FullRun(t *testing.T) {
	ctrl, out, err := plainRun(t, "a\na\n1\nb\nB\nc\n")
	require.NoError(t, err)

	assert.Equal(t, quiz.PhaseCompleted, ctrl.State().Phase)
	assert.Contains(t, out, "── Question 6/6 ──")
	assert.Contains(t, out, "Your future self: "+catalog.MustLookup(catalog.Analytical).DisplayName())
	assert.Contains(t, out, fmt.Sprintf("  %-14s %3d%%", "Analytical", 50))
	assert.Contains(t, out, fmt.Sprintf("  %-14s %3d%%", "Creative", 33))
	assert.Contains(t, out, fmt.Sprintf("  %-14s %3d%%", "Social", 17))
	assert.Contains(t, out, catalog.MustLookup(catalog.Analytical).Motivation)
}

func TestPlayPlain_BackKeepsAnswer(t *testing.T) {
	ctrl, out, err := plainRun(t, "c\np\n\nd\nd\nd\nd\nd\n")
	require.NoError(t, err)

	answers := ctrl.State().Answers
	assert.Equal(t, 2, answers[0])
	assert.Contains(t, out, " ✓ C) ")
	assert.Contains(t, out, "Enter = keep")
}

func TestPlayPlain_RejectsUnknownAnswer(t *testing.T) {
	_, out, err := plainRun(t, "z\n\n")
	require.ErrorIs(t, err, errInputClosed)

	assert.Equal(t, 2, strings.Count(out, "(pick one of A-E)"))
	assert.NotContains(t, out, "Question 2/6")
}

func TestPlayPlain_BackOnFirstQuestion(t *testing.T) {
	_, out, err := plainRun(t, "p\n")
	require.ErrorIs(t, err, errInputClosed)
	assert.Contains(t, out, "(already on the first question)")
}

func TestPlayPlain_InputClosedResets(t *testing.T) {
	ctrl, _, err := plainRun(t, "a\nb\n")
	require.ErrorIs(t, err, errInputClosed)
	assert.Equal(t, quiz.PhaseNotStarted, ctrl.State().Phase)
}

func TestPlayCommandNoTUI(t *testing.T) {
	t.Setenv("FUTUREME_MUTE", "true")
	rootCmd.SetIn(strings.NewReader(strings.Repeat("e\n", catalog.QuestionCount)))
	t.Cleanup(func() { rootCmd.SetIn(nil) })

	out, _, err := execute(t, "play", "--no-tui")
	require.NoError(t, err)
	assert.Contains(t, out, "Your future self: "+catalog.MustLookup(catalog.Sports).DisplayName())
}
