package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandWholeContractions(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"cannot", "We can't stop.", "We cannot stop."},
		{"will not", "It won't work.", "It will not work."},
		{"capitalized", "It's done.", "It is done."},
		{"mid sentence lowercase", "I think it's done.", "I think it is done."},
		{"first person", "I'm sure.", "I am sure."},
		{"let us", "Let's begin.", "Let us begin."},
		{"negation", "They don't agree.", "They do not agree."},
		{"no contraction", "Nothing to expand here.", "Nothing to expand here."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, expandWholeContractions(tc.input))
		})
	}

	t.Run("every table entry expands", func(t *testing.T) {
		for _, contraction := range wholeContractionOrder {
			expanded := expandWholeContractions(contraction)
			assert.Equal(t, wholeContractions[contraction], expanded,
				"contraction %q", contraction)
		}
	})

	t.Run("quote markers survive around the word", func(t *testing.T) {
		assert.Equal(t, "``it is''", expandWholeContractions("``it's''"))
	})
}

func TestExpandSuffixContractions(t *testing.T) {
	t.Run("known suffixes", func(t *testing.T) {
		cases := []struct {
			token    string
			expected string
		}{
			{"they'll", "they will"},
			{"we've", "we have"},
			{"she'd", "she would"},
			{"students're", "students are"},
			{"author's", "author is"},
			{"needn't", "need not"},
		}
		for _, tc := range cases {
			out := expandSuffixContractions([]string{tc.token})
			assert.Equal(t, []string{tc.expected}, out, "token %q", tc.token)
		}
	})

	t.Run("capitalization preserved", func(t *testing.T) {
		out := expandSuffixContractions([]string{"They'll"})
		assert.Equal(t, []string{"They will"}, out)
	})

	t.Run("n't wins over 't-free suffixes", func(t *testing.T) {
		// "can't" tokenized apart would arrive as "ca" + "n't"; the n't
		// entry must match before anything else could.
		out := expandSuffixContractions([]string{"n't"})
		assert.Equal(t, []string{" not"}, out)
	})

	t.Run("plain tokens pass through", func(t *testing.T) {
		tokens := strings.Fields("the quick brown fox")
		assert.Equal(t, tokens, expandSuffixContractions(tokens))
	})
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Cannot", capitalize("cannot"))
	assert.Equal(t, "Will not", capitalize("wILL NOT"))
	assert.Equal(t, "", capitalize(""))
}
