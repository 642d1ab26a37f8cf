package services

import (
	"regexp"
	"strings"
	"unicode"
)

// wholeContractionOrder fixes the alternation order of the whole-word
// pass. These are the unambiguous contractions resolved before
// tokenization can split them apart.
var wholeContractionOrder = []string{
	"can't", "won't", "shan't", "ain't",
	"i'm", "it's", "we're", "they're", "you're",
	"he's", "she's", "that's", "there's", "what's", "who's",
	"let's",
	"didn't", "doesn't", "don't",
	"couldn't", "shouldn't", "wouldn't",
	"isn't", "aren't", "weren't",
	"hasn't", "haven't", "hadn't",
}

// wholeContractions maps each whole-word contraction to its expansion.
var wholeContractions = map[string]string{
	"can't":     "cannot",
	"won't":     "will not",
	"shan't":    "shall not",
	"ain't":     "is not",
	"i'm":       "i am",
	"it's":      "it is",
	"we're":     "we are",
	"they're":   "they are",
	"you're":    "you are",
	"he's":      "he is",
	"she's":     "she is",
	"that's":    "that is",
	"there's":   "there is",
	"what's":    "what is",
	"who's":     "who is",
	"let's":     "let us",
	"didn't":    "did not",
	"doesn't":   "does not",
	"don't":     "do not",
	"couldn't":  "could not",
	"shouldn't": "should not",
	"wouldn't":  "would not",
	"isn't":     "is not",
	"aren't":    "are not",
	"weren't":   "were not",
	"hasn't":    "has not",
	"haven't":   "have not",
	"hadn't":    "had not",
}

// suffixContraction is one entry of the fallback table. Order matters:
// the first matching suffix wins.
type suffixContraction struct {
	suffix    string
	expansion string
}

// suffixContractions catches tokens the whole-word table missed, at the
// cost of occasional grammatical imprecision ("'s" is expanded to " is"
// even on possessives).
var suffixContractions = []suffixContraction{
	{"n't", " not"},
	{"'re", " are"},
	{"'s", " is"},
	{"'ll", " will"},
	{"'ve", " have"},
	{"'d", " would"},
	{"'m", " am"},
}

// wholeContractionPattern matches a whole-word contraction on the raw
// sentence, tolerating the open/close quote markers (`` and '') a prior
// tokenization pass may have wrapped around it.
var wholeContractionPattern = func() *regexp.Regexp {
	escaped := make([]string, len(wholeContractionOrder))
	for i, k := range wholeContractionOrder {
		escaped[i] = regexp.QuoteMeta(k)
	}
	alt := strings.Join(escaped, "|")
	return regexp.MustCompile("(?i)(?:(``)\\s*)?(" + alt + ")(?:\\s*(''))?")
}()

// expandWholeContractions applies the whole-word table directly to the
// raw sentence, before tokenization can split "can't" into "ca"+"n't".
// The leading capitalization of the original token is preserved.
func expandWholeContractions(sentence string) string {
	return wholeContractionPattern.ReplaceAllStringFunc(sentence, func(match string) string {
		groups := wholeContractionPattern.FindStringSubmatch(match)
		openQuote, word, closeQuote := groups[1], groups[2], groups[3]

		replacement, ok := wholeContractions[strings.ToLower(word)]
		if !ok {
			return match
		}
		if startsUpper(word) {
			replacement = capitalize(replacement)
		}
		return openQuote + replacement + closeQuote
	})
}

// expandSuffixContractions is the fallback pass over word tokens: any
// token ending in a known contraction suffix has the suffix stripped and
// replaced, base capitalization preserved.
func expandSuffixContractions(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		lower := strings.ToLower(token)
		replaced := false
		for _, sc := range suffixContractions {
			if strings.HasSuffix(lower, sc.suffix) {
				expanded := lower[:len(lower)-len(sc.suffix)] + sc.expansion
				if startsUpper(token) {
					expanded = capitalize(expanded)
				}
				out = append(out, expanded)
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, token)
		}
	}
	return out
}

// startsUpper reports whether the first rune of s is upper case.
func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + strings.ToLower(s[i+len(string(r)):])
	}
	return s
}
