package services

import (
	"fmt"
	"regexp"
	"strings"
)

// citationPattern matches APA-style in-text references such as
// (Smith et al., 2023, pp. 10-12): a parenthesized author list, an
// optional "et al.", a four-digit year and an optional page range.
// Compiled once at package level.
var citationPattern = regexp.MustCompile(
	`\(\s*[A-Za-z&\-,\.\s]+(?:et al\.\s*)?,\s*\d{4}(?:,\s*(?:pp?\.\s*\d+(?:-\d+)?))?\s*\)`,
)

// placeholderPattern matches a citation placeholder, tolerating the
// incidental whitespace tokenization leaves inside the brackets
// ("[ [ REF_3 ] ]").
var placeholderPattern = regexp.MustCompile(`\[\s*\[\s*REF_(\d+)\s*\]\s*\]`)

// placeholderMarker identifies tokens that belong to a citation
// placeholder; such tokens are never rewritten.
const placeholderMarker = "[[REF_"

// CitationMap maps a placeholder token to the original citation
// substring it replaced.
type CitationMap map[string]string

// ExtractCitations replaces every citation match with a uniquely numbered
// placeholder of the form [[REF_i]] and returns the protected text with
// the placeholder map. Matches are collected as an ordered span list and
// replaced by index, so a citation that appears twice verbatim gets two
// distinct placeholders, assigned left to right.
func ExtractCitations(text string) (string, CitationMap) {
	spans := citationPattern.FindAllStringIndex(text, -1)
	refs := make(CitationMap, len(spans))
	if len(spans) == 0 {
		return text, refs
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for i, span := range spans {
		placeholder := fmt.Sprintf("[[REF_%d]]", i+1)
		refs[placeholder] = text[span[0]:span[1]]
		b.WriteString(text[last:span[0]])
		b.WriteString(placeholder)
		last = span[1]
	}
	b.WriteString(text[last:])

	return b.String(), refs
}

// RestoreCitations replaces every placeholder occurrence with its mapped
// original citation. A placeholder with no map entry is left unchanged,
// never silently dropped.
func RestoreCitations(text string, refs CitationMap) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		idx := placeholderPattern.FindStringSubmatch(match)[1]
		if original, ok := refs["[[REF_"+idx+"]]"]; ok {
			return original
		}
		return match
	})
}
