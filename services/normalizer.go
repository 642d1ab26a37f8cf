package services

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PDF extractors leave hard line breaks mid-sentence and split words
// across lines with hyphens; both confuse sentence segmentation.
var (
	hyphenLineBreak = regexp.MustCompile(`(\pL)-\r?\n\s*(\pL)`)
	softLineBreak   = regexp.MustCompile(`([^\n])\r?\n([^\n])`)
	horizontalRuns  = regexp.MustCompile(`[ \t]{2,}`)
)

// TextNormalizer cleans text extracted from PDFs before it reaches the
// classifier.
type TextNormalizer struct{}

// NewTextNormalizer creates a text normalizer.
func NewTextNormalizer() *TextNormalizer {
	return &TextNormalizer{}
}

// Normalize applies unicode NFC normalization, rejoins words hyphenated
// across line breaks, folds soft line breaks into spaces and collapses
// horizontal whitespace runs. Paragraph breaks (blank lines) survive.
func (n *TextNormalizer) Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")

	text = hyphenLineBreak.ReplaceAllString(text, "$1$2")
	text = softLineBreak.ReplaceAllString(text, "$1 $2")
	text = horizontalRuns.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
