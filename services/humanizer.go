package services

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
)

// Cleanup patterns for the final normalization pass.
var (
	spaceBeforePunct = regexp.MustCompile(`[ \t]+([.,;:!?])`)
	spaceAfterOpen   = regexp.MustCompile(`(\()[ \t]+`)
	spaceBeforeClose = regexp.MustCompile(`[ \t]+(\))`)
	runsOfSpace      = regexp.MustCompile(`[ \t]{2,}`)
	pairedQuoteMarks = regexp.MustCompile("``\\s*(.+?)\\s*''")
)

// HumanizerService composes citation protection, contraction expansion,
// synonym substitution and transition insertion into a line-preserving
// rewrite pass.
type HumanizerService struct {
	tokenizer Tokenizer
	tagger    Tagger
	thesaurus Thesaurus
	rand      RandSource
	logger    Logger
}

// NewHumanizerService creates a humanizer with the given collaborators.
// The tagger and thesaurus may be nil, in which case the synonym pass is
// a no-op.
func NewHumanizerService(tokenizer Tokenizer, tagger Tagger, thesaurus Thesaurus, rnd RandSource, logger Logger) *HumanizerService {
	if rnd == nil {
		rnd = NewDefaultRand()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &HumanizerService{
		tokenizer: tokenizer,
		tagger:    tagger,
		thesaurus: thesaurus,
		rand:      rnd,
		logger:    logger,
	}
}

// Humanize implements Humanizer.Humanize:
//
//  1. extract citations into placeholders,
//  2. rewrite each line sentence by sentence (blank lines stay blank),
//  3. rejoin lines with single line breaks,
//  4. restore citations,
//  5. normalize whitespace and punctuation.
//
// The output has exactly as many line-break-delimited segments as the
// input, and every citation reappears verbatim in its original relative
// position.
func (h *HumanizerService) Humanize(ctx context.Context, text string, opts models.HumanizeOptions) (*models.HumanizeResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyInput, "nothing to process", nil)
	}
	if err := validateRate("synonym_rate", opts.SynonymRate); err != nil {
		return nil, err
	}
	if err := validateRate("transition_rate", opts.TransitionRate); err != nil {
		return nil, err
	}

	original := h.stats(text)

	protected, refs := ExtractCitations(text)

	lines := strings.Split(protected, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == "" {
			out[i] = ""
			continue
		}
		rewritten, err := h.humanizeLine(line, opts)
		if err != nil {
			return nil, err
		}
		out[i] = rewritten
	}

	restored := RestoreCitations(strings.Join(out, "\n"), refs)
	final := cleanupText(restored)

	return &models.HumanizeResult{
		ID:                 uuid.New().String(),
		Text:               final,
		CitationsProtected: len(refs),
		Original:           original,
		Result:             h.stats(final),
	}, nil
}

// humanizeLine rewrites every sentence of one non-blank line and rejoins
// the results with single spaces.
func (h *HumanizerService) humanizeLine(line string, opts models.HumanizeOptions) (string, error) {
	sentences, err := h.tokenizer.Sentences(line)
	if err != nil {
		return "", errors.WrapError(err, errors.ErrTypeInternal, errors.ErrCodeSegmentation,
			"sentence segmentation failed")
	}

	out := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		rewritten, err := h.humanizeSentence(sentence, opts)
		if err != nil {
			return "", err
		}
		out = append(out, rewritten)
	}
	return strings.Join(out, " "), nil
}

// humanizeSentence applies contraction expansion, synonym substitution
// and transition insertion to one sentence.
func (h *HumanizerService) humanizeSentence(sentence string, opts models.HumanizeOptions) (string, error) {
	// Whole-word contractions first, on the raw sentence, before the
	// tokenizer can split them apart.
	expanded := expandWholeContractions(sentence)

	tokens, err := h.tokenizer.Words(expanded)
	if err != nil {
		return "", errors.WrapError(err, errors.ErrTypeInternal, errors.ErrCodeSegmentation,
			"word segmentation failed")
	}
	expanded = strings.Join(expandSuffixContractions(tokens), " ")

	substituted := h.replaceSynonyms(expanded, opts.SynonymRate)

	return h.addTransition(substituted, opts.TransitionRate), nil
}

// stats counts words and sentences for display. Counting is best-effort:
// a tokenizer failure falls back to whitespace splitting.
func (h *HumanizerService) stats(text string) models.TextStats {
	var stats models.TextStats

	if words, err := h.tokenizer.Words(text); err == nil {
		stats.Words = len(words)
	} else {
		stats.Words = len(strings.Fields(text))
	}
	if sentences, err := h.tokenizer.Sentences(text); err == nil {
		stats.Sentences = len(sentences)
	} else if strings.TrimSpace(text) != "" {
		stats.Sentences = 1
	}

	return stats
}

// cleanupText removes space before closing punctuation and inside
// parentheses, collapses runs of horizontal whitespace (never newlines)
// and folds paired tokenizer quote markers into plain quotes.
func cleanupText(text string) string {
	text = spaceBeforePunct.ReplaceAllString(text, "$1")
	text = spaceAfterOpen.ReplaceAllString(text, "$1")
	text = spaceBeforeClose.ReplaceAllString(text, "$1")
	text = runsOfSpace.ReplaceAllString(text, " ")
	text = pairedQuoteMarks.ReplaceAllString(text, `"$1"`)
	return text
}

// validateRate checks a pipeline probability lies in the closed range [0, 1].
func validateRate(name string, value float64) error {
	if value < 0 || value > 1 {
		return errors.NewValidationError(errors.ErrCodeInvalidRange,
			name+" must be in the range [0, 1]", nil)
	}
	return nil
}
