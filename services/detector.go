package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
)

// DetectionService implements Detector: it extracts and normalizes the
// text of an uploaded PDF, classifies it sentence by sentence and
// caches the outcome by document digest.
type DetectionService struct {
	pdf        PDFService
	classifier SentenceClassifier
	cache      AnalysisCache
	tokenizer  Tokenizer
	normalizer *TextNormalizer
	logger     Logger
	cacheTTL   time.Duration
}

// NewDetectionService creates a detection service. cache may be nil,
// in which case every analysis hits the classifier.
func NewDetectionService(
	pdf PDFService,
	classifier SentenceClassifier,
	cache AnalysisCache,
	tokenizer Tokenizer,
	logger Logger,
	cacheTTL time.Duration,
) *DetectionService {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &DetectionService{
		pdf:        pdf,
		classifier: classifier,
		cache:      cache,
		tokenizer:  tokenizer,
		normalizer: NewTextNormalizer(),
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// AnalyzePDF implements Detector.AnalyzePDF.
func (s *DetectionService) AnalyzePDF(ctx context.Context, data []byte) (*models.DetectionResult, error) {
	if len(data) == 0 {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyInput, "no document provided", nil)
	}

	key := documentDigest(data)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			s.logger.Debug("detection cache hit", String("digest", key))
			hit := *cached
			hit.Cached = true
			return &hit, nil
		}
	}

	text, err := s.pdf.ExtractText(ctx, data)
	if err != nil {
		return nil, err
	}

	text = s.normalizer.Normalize(text)
	if text == "" {
		return nil, errors.NewValidationError(errors.ErrCodePDFNoText,
			"no selectable text could be extracted from this PDF", nil)
	}

	analysis, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	result := &models.DetectionResult{
		ID:          uuid.New().String(),
		Sentences:   analysis.Sentences,
		Percentages: analysis.Percentages,
		WordCount:   s.wordCount(text),
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, result, s.cacheTTL)
	}

	return result, nil
}

// AnnotatePDF implements Detector.AnnotatePDF: it runs the same
// analysis and returns the uploaded document stamped with the result
// legend.
func (s *DetectionService) AnnotatePDF(ctx context.Context, data []byte) ([]byte, *models.DetectionResult, error) {
	result, err := s.AnalyzePDF(ctx, data)
	if err != nil {
		return nil, nil, err
	}

	annotated, err := s.pdf.Annotate(ctx, data, &models.DetectionAnalysis{
		Sentences:   result.Sentences,
		Percentages: result.Percentages,
	})
	if err != nil {
		return nil, nil, err
	}

	return annotated, result, nil
}

func (s *DetectionService) wordCount(text string) int {
	if words, err := s.tokenizer.Words(text); err == nil {
		return len(words)
	}
	return len(strings.Fields(text))
}

// documentDigest keys the analysis cache by document content.
func documentDigest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
