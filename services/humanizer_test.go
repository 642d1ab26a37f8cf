package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
)

// stubSentenceTokenizer splits sentences on ". " and words on
// whitespace. Deterministic stand-in for the real segmenter.
type stubSentenceTokenizer struct{}

func (stubSentenceTokenizer) Sentences(text string) ([]string, error) {
	parts := strings.SplitAfter(text, ". ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

func (stubSentenceTokenizer) Words(sentence string) ([]string, error) {
	return strings.Fields(sentence), nil
}

func newTestHumanizer(rnd RandSource) *HumanizerService {
	return NewHumanizerService(stubSentenceTokenizer{}, nil, nil, rnd, NewDefaultLogger())
}

func TestHumanize(t *testing.T) {
	ctx := context.Background()
	noop := models.HumanizeOptions{SynonymRate: 0, TransitionRate: 0}

	t.Run("contraction expanded and citation preserved", func(t *testing.T) {
		h := newTestHumanizer(&stubRand{f: 0.5, n: 0})
		input := "The model performs well (Smith et al., 2023, pp. 4-5). It's good."

		result, err := h.Humanize(ctx, input, noop)
		require.NoError(t, err)

		assert.Equal(t, "The model performs well (Smith et al., 2023, pp. 4-5). It is good.", result.Text)
		assert.Equal(t, 1, result.CitationsProtected)
		assert.NotEmpty(t, result.ID)
	})

	t.Run("line count is preserved", func(t *testing.T) {
		h := newTestHumanizer(&stubRand{f: 0.5, n: 0})
		input := "First paragraph here.\n\nSecond paragraph here.\nThird line."

		result, err := h.Humanize(ctx, input, noop)
		require.NoError(t, err)

		inLines := strings.Split(input, "\n")
		outLines := strings.Split(result.Text, "\n")
		assert.Equal(t, len(inLines), len(outLines))
	})

	t.Run("blank lines stay blank", func(t *testing.T) {
		h := newTestHumanizer(&stubRand{f: 0.5, n: 0})
		input := "One sentence.\n\n\nAnother sentence."

		result, err := h.Humanize(ctx, input, noop)
		require.NoError(t, err)

		outLines := strings.Split(result.Text, "\n")
		require.Len(t, outLines, 4)
		assert.Equal(t, "", outLines[1])
		assert.Equal(t, "", outLines[2])
	})

	t.Run("empty input is rejected", func(t *testing.T) {
		h := newTestHumanizer(&stubRand{f: 0.5, n: 0})

		_, err := h.Humanize(ctx, "   \n\t ", noop)
		require.Error(t, err)

		appErr, ok := errors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeEmptyInput, appErr.Code)
	})

	t.Run("out-of-range rates are rejected", func(t *testing.T) {
		h := newTestHumanizer(&stubRand{f: 0.5, n: 0})

		_, err := h.Humanize(ctx, "Some text.", models.HumanizeOptions{SynonymRate: 1.2})
		require.Error(t, err)
		appErr, _ := errors.AsAppError(err)
		assert.Equal(t, errors.ErrCodeInvalidRange, appErr.Code)

		_, err = h.Humanize(ctx, "Some text.", models.HumanizeOptions{TransitionRate: -0.1})
		require.Error(t, err)
		appErr, _ = errors.AsAppError(err)
		assert.Equal(t, errors.ErrCodeInvalidRange, appErr.Code)
	})

	t.Run("transition inserted when probability is one", func(t *testing.T) {
		h := newTestHumanizer(&stubRand{f: 0.0, n: 0})

		result, err := h.Humanize(ctx, "The claim holds.",
			models.HumanizeOptions{SynonymRate: 0, TransitionRate: 1})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(result.Text, academicTransitions[0]),
			"got %q", result.Text)
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		h := newTestHumanizer(&stubRand{f: 0.5, n: 0})
		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := h.Humanize(cancelled, "Some text.", noop)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("word and sentence stats are reported", func(t *testing.T) {
		h := newTestHumanizer(&stubRand{f: 0.5, n: 0})

		result, err := h.Humanize(ctx, "One two three. Four five.", noop)
		require.NoError(t, err)

		assert.Equal(t, 5, result.Original.Words)
		assert.Equal(t, 2, result.Original.Sentences)
		assert.Equal(t, result.Original.Words, result.Result.Words)
	})
}

func TestCleanupText(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"space before period", "A claim .", "A claim."},
		{"space before comma", "First , second", "First, second"},
		{"space inside parens", "( Smith, 2020 )", "(Smith, 2020)"},
		{"runs of spaces", "too   many    spaces", "too many spaces"},
		{"paired quote markers", "He said `` hello '' loudly", `He said "hello" loudly`},
		{"newlines survive", "line one\nline two", "line one\nline two"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, cleanupText(tc.input))
		})
	}
}
