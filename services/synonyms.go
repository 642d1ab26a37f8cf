package services

import "strings"

// Coarse part-of-speech tags. Only these four open classes are eligible
// for synonym substitution.
const (
	POSAdjective = "ADJ"
	POSNoun      = "NOUN"
	POSVerb      = "VERB"
	POSAdverb    = "ADV"
)

// openClassPOS reports whether the coarse tag names an open word class.
func openClassPOS(pos string) bool {
	switch pos {
	case POSAdjective, POSNoun, POSVerb, POSAdverb:
		return true
	}
	return false
}

// replaceSynonyms probabilistically swaps open-class tokens for
// same-POS synonyms. Each eligible token gets one independent draw, so
// the transform has no memory across tokens. Tokens carrying the
// citation placeholder marker pass through untouched regardless of the
// probability. When the tagger or thesaurus collaborator is absent the
// pass degrades to a no-op rather than failing the pipeline.
func (h *HumanizerService) replaceSynonyms(sentence string, pSyn float64) string {
	if h.tagger == nil || h.thesaurus == nil {
		return sentence
	}

	tokens, err := h.tagger.Tag(sentence)
	if err != nil {
		// Degraded pass over total failure
		h.logger.Warn("POS tagging failed, skipping synonym substitution",
			ErrorField("error", err))
		return sentence
	}

	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.Contains(token.Text, placeholderMarker) {
			out = append(out, token.Text)
			continue
		}

		eligible := openClassPOS(token.POS) && h.thesaurus.HasEntry(token.Text)
		if eligible && h.rand.Float64() < pSyn {
			synonyms := h.thesaurus.Synonyms(token.Text, token.POS)
			if len(synonyms) > 0 {
				out = append(out, synonyms[h.rand.Intn(len(synonyms))])
				continue
			}
		}
		out = append(out, token.Text)
	}

	return strings.Join(out, " ")
}
