package services

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v2"

	"ai-text-toolkit/errors"
)

//go:embed data/thesaurus.yaml
var lexiconData []byte

// LexiconThesaurus is the lexical synonym database collaborator, backed
// by an embedded lexicon keyed by word and coarse POS. It is loaded once
// at startup and never mutated afterwards.
type LexiconThesaurus struct {
	entries map[string]map[string][]string
}

// NewLexiconThesaurus parses the embedded lexicon.
func NewLexiconThesaurus() (*LexiconThesaurus, error) {
	var raw map[string]map[string][]string
	if err := yaml.Unmarshal(lexiconData, &raw); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeConfigurationError,
			"failed to parse synonym lexicon", err)
	}

	entries := make(map[string]map[string][]string, len(raw))
	for word, byPOS := range raw {
		entries[strings.ToLower(word)] = byPOS
	}

	return &LexiconThesaurus{entries: entries}, nil
}

// HasEntry implements Thesaurus.HasEntry.
func (t *LexiconThesaurus) HasEntry(word string) bool {
	_, ok := t.entries[strings.ToLower(word)]
	return ok
}

// Synonyms implements Thesaurus.Synonyms. The result excludes entries
// case-insensitively identical to the word itself.
func (t *LexiconThesaurus) Synonyms(word, pos string) []string {
	byPOS, ok := t.entries[strings.ToLower(word)]
	if !ok {
		return nil
	}

	var out []string
	for _, synonym := range byPOS[pos] {
		if !strings.EqualFold(synonym, word) {
			out = append(out, synonym)
		}
	}
	return out
}
