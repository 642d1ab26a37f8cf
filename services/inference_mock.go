package services

import (
	"context"
	"strings"

	"ai-text-toolkit/models"
)

// MockClassifier provides a SentenceClassifier implementation for
// testing. Unconfigured calls fall back to a simple keyword heuristic.
type MockClassifier struct {
	ClassifyFunc func(ctx context.Context, text string) (*models.DetectionAnalysis, error)
}

// NewMockClassifier creates a new mock classifier
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// Classify implements SentenceClassifier.Classify with mock behavior
func (m *MockClassifier) Classify(ctx context.Context, text string) (*models.DetectionAnalysis, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}
	return defaultClassify(ctx, text)
}

// defaultClassify labels sentences mentioning models or algorithms as
// AI-generated and everything else as human-written. Good enough to
// exercise the detection flow without the real model.
func defaultClassify(_ context.Context, text string) (*models.DetectionAnalysis, error) {
	var sentences []models.SentenceClassification
	for _, raw := range strings.Split(text, ".") {
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}
		label := models.LabelHuman
		lower := strings.ToLower(sentence)
		if strings.Contains(lower, "model") || strings.Contains(lower, "algorithm") {
			label = models.LabelAI
		}
		sentences = append(sentences, models.SentenceClassification{
			Text:  sentence + ".",
			Label: label,
		})
	}

	return &models.DetectionAnalysis{
		Sentences:   sentences,
		Percentages: LabelPercentages(sentences),
	}, nil
}

// MockRewriter provides a SentenceRewriter implementation for testing.
type MockRewriter struct {
	RewriteFunc func(ctx context.Context, sentence string) (string, error)
}

// NewMockRewriter creates a new mock rewriter
func NewMockRewriter() *MockRewriter {
	return &MockRewriter{}
}

// Rewrite implements SentenceRewriter.Rewrite with mock behavior.
// Unconfigured calls return the sentence unchanged.
func (m *MockRewriter) Rewrite(ctx context.Context, sentence string) (string, error) {
	if m.RewriteFunc != nil {
		return m.RewriteFunc(ctx, sentence)
	}
	return sentence, nil
}
