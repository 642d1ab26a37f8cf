package services

import (
	"context"

	"ai-text-toolkit/models"
)

// Humanizer runs the deterministic text humanization pipeline.
type Humanizer interface {
	Humanize(ctx context.Context, text string, opts models.HumanizeOptions) (*models.HumanizeResult, error)
}

// TextRewriter rewrites text sentence by sentence through a generative
// inference model.
type TextRewriter interface {
	RewriteText(ctx context.Context, text string) (*models.RewriteResult, error)
}

// Detector analyzes a PDF document for AI-generated content.
type Detector interface {
	AnalyzePDF(ctx context.Context, data []byte) (*models.DetectionResult, error)
	AnnotatePDF(ctx context.Context, data []byte) ([]byte, *models.DetectionResult, error)
}

// Tokenizer segments raw text into sentences and a sentence into word
// tokens. Contraction suffixes may come back as separate tokens
// (e.g. "can't" -> "ca", "n't"), which is why whole-word contraction
// handling runs before tokenization.
type Tokenizer interface {
	Sentences(text string) ([]string, error)
	Words(sentence string) ([]string, error)
}

// TaggedToken is a word token paired with its coarse part-of-speech tag.
// POS is empty for closed-class words and punctuation.
type TaggedToken struct {
	Text string
	POS  string
}

// Tagger assigns coarse part-of-speech tags to the tokens of a sentence.
type Tagger interface {
	Tag(sentence string) ([]TaggedToken, error)
}

// Thesaurus is the lexical synonym database collaborator.
type Thesaurus interface {
	// HasEntry reports whether the word has any synonym set at all.
	HasEntry(word string) bool
	// Synonyms returns the synonym set for the word restricted to the
	// given coarse POS, excluding entries case-insensitively identical to
	// the word itself. May be empty.
	Synonyms(word, pos string) []string
}

// RandSource is the injected pseudorandom dependency behind every
// probabilistic branch, seedable and swappable with a deterministic stub.
type RandSource interface {
	Float64() float64
	Intn(n int) int
}

// SentenceClassifier is the sentence-level AI detection collaborator.
type SentenceClassifier interface {
	Classify(ctx context.Context, text string) (*models.DetectionAnalysis, error)
}

// SentenceRewriter is the generative sentence rewriting collaborator.
type SentenceRewriter interface {
	Rewrite(ctx context.Context, sentence string) (string, error)
}

// PDFService extracts text from and annotates PDF documents.
type PDFService interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
	Annotate(ctx context.Context, data []byte, analysis *models.DetectionAnalysis) ([]byte, error)
}

// HistoryStore persists analysis run records.
type HistoryStore interface {
	SaveRun(ctx context.Context, record *models.AnalysisRecord) error
	ListRuns(ctx context.Context, pagination *models.Pagination) ([]models.AnalysisRecord, error)
	HealthCheck(ctx context.Context) error
}
