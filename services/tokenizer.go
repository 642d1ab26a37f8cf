package services

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// ProseNLP implements Tokenizer and Tagger on top of the prose NLP
// library (Penn-Treebank tokenizer, Punkt-style sentence segmenter and a
// perceptron POS tagger). It is stateless and safe for concurrent use.
type ProseNLP struct{}

// NewProseNLP creates the tokenizer/tagger collaborator.
func NewProseNLP() *ProseNLP {
	return &ProseNLP{}
}

// Sentences implements Tokenizer.Sentences.
func (p *ProseNLP) Sentences(text string) ([]string, error) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, err
	}

	sentences := doc.Sentences()
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if trimmed := strings.TrimSpace(s.Text); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out, nil
}

// Words implements Tokenizer.Words. Contraction suffixes come back as
// separate tokens, Penn Treebank style ("can't" -> "ca", "n't").
func (p *ProseNLP) Words(sentence string) ([]string, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, err
	}

	tokens := doc.Tokens()
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, t.Text)
	}
	return out, nil
}

// Tag implements Tagger.Tag, mapping Penn Treebank tags down to the four
// coarse open classes.
func (p *ProseNLP) Tag(sentence string) ([]TaggedToken, error) {
	doc, err := prose.NewDocument(sentence,
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return nil, err
	}

	tokens := doc.Tokens()
	out := make([]TaggedToken, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, TaggedToken{Text: t.Text, POS: coarsePOS(t.Tag)})
	}
	return out, nil
}

// coarsePOS maps a Penn Treebank tag to a coarse open-class tag, or ""
// for everything else.
func coarsePOS(tag string) string {
	switch {
	case strings.HasPrefix(tag, "JJ"):
		return POSAdjective
	case strings.HasPrefix(tag, "NN"):
		return POSNoun
	case strings.HasPrefix(tag, "VB"):
		return POSVerb
	case strings.HasPrefix(tag, "RB"):
		return POSAdverb
	}
	return ""
}
