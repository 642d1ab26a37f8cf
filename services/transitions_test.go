package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddTransition(t *testing.T) {
	t.Run("probability zero never inserts", func(t *testing.T) {
		h := newSynonymTestService(nil, nil, &stubRand{f: 0.5, n: 0})
		assert.Equal(t, "The claim holds.", h.addTransition("The claim holds.", 0.0))
	})

	t.Run("probability one always inserts", func(t *testing.T) {
		h := newSynonymTestService(nil, nil, &stubRand{f: 0.0, n: 0})
		out := h.addTransition("The claim holds.", 1.0)
		assert.Equal(t, academicTransitions[0]+" The claim holds.", out)
	})

	t.Run("transition index comes from the rand source", func(t *testing.T) {
		h := newSynonymTestService(nil, nil, &stubRand{f: 0.0, n: 3})
		out := h.addTransition("The claim holds.", 1.0)
		assert.Equal(t, academicTransitions[3]+" The claim holds.", out)
	})

	t.Run("repeated runs can stack transitions", func(t *testing.T) {
		h := newSynonymTestService(nil, nil, &stubRand{f: 0.0, n: 0})
		once := h.addTransition("The claim holds.", 1.0)
		twice := h.addTransition(once, 1.0)
		assert.Equal(t, academicTransitions[0]+" "+academicTransitions[0]+" The claim holds.", twice)
	})
}
