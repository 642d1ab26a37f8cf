package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCitations(t *testing.T) {
	t.Run("single citation", func(t *testing.T) {
		text := "The model performs well (Smith et al., 2023, pp. 4-5)."
		protected, refs := ExtractCitations(text)

		assert.Equal(t, "The model performs well [[REF_1]].", protected)
		assert.Len(t, refs, 1)
		assert.Equal(t, "(Smith et al., 2023, pp. 4-5)", refs["[[REF_1]]"])
	})

	t.Run("multiple citations numbered left to right", func(t *testing.T) {
		text := "First (Smith, 2020). Second (Jones & Lee, 2021, p. 7)."
		protected, refs := ExtractCitations(text)

		assert.Equal(t, "First [[REF_1]]. Second [[REF_2]].", protected)
		assert.Equal(t, "(Smith, 2020)", refs["[[REF_1]]"])
		assert.Equal(t, "(Jones & Lee, 2021, p. 7)", refs["[[REF_2]]"])
	})

	t.Run("repeated citation gets distinct placeholders", func(t *testing.T) {
		text := "(Smith, 2020) and again (Smith, 2020)."
		protected, refs := ExtractCitations(text)

		assert.Equal(t, "[[REF_1]] and again [[REF_2]].", protected)
		assert.Equal(t, refs["[[REF_1]]"], refs["[[REF_2]]"])
	})

	t.Run("no citations", func(t *testing.T) {
		text := "Plain text with (parenthetical remarks) but no year."
		protected, refs := ExtractCitations(text)

		assert.Equal(t, text, protected)
		assert.Empty(t, refs)
	})

	t.Run("extraction is idempotent on protected text", func(t *testing.T) {
		protected, _ := ExtractCitations("Shown earlier (Smith et al., 2023). It holds.")
		again, refs := ExtractCitations(protected)

		assert.Equal(t, protected, again)
		assert.Empty(t, refs)
	})

	t.Run("non-citation parentheses are untouched", func(t *testing.T) {
		text := "A result (see Figure 2) and a reference (Doe, 1999)."
		protected, refs := ExtractCitations(text)

		assert.Contains(t, protected, "(see Figure 2)")
		assert.Len(t, refs, 1)
	})
}

func TestRestoreCitations(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		text := "Evidence supports this (Brown et al., 2019, pp. 10-12). More follows (Green, 2022)."
		protected, refs := ExtractCitations(text)
		restored := RestoreCitations(protected, refs)

		assert.Equal(t, text, restored)
	})

	t.Run("whitespace inside placeholder is tolerated", func(t *testing.T) {
		refs := CitationMap{"[[REF_1]]": "(Smith, 2020)"}
		restored := RestoreCitations("Result [ [ REF_1 ] ] holds.", refs)

		assert.Equal(t, "Result (Smith, 2020) holds.", restored)
	})

	t.Run("unmapped placeholder is left unchanged", func(t *testing.T) {
		restored := RestoreCitations("Orphan [[REF_9]] stays.", CitationMap{})

		assert.Equal(t, "Orphan [[REF_9]] stays.", restored)
	})

	t.Run("restore is idempotent", func(t *testing.T) {
		text := "Claim (White, 2018)."
		protected, refs := ExtractCitations(text)
		once := RestoreCitations(protected, refs)
		twice := RestoreCitations(once, refs)

		assert.Equal(t, once, twice)
	})
}
