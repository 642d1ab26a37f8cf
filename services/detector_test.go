package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
)

// stubPDFService returns canned text and annotation output.
type stubPDFService struct {
	text        string
	extractErr  error
	annotated   []byte
	annotateErr error
}

func (s *stubPDFService) ExtractText(context.Context, []byte) (string, error) {
	return s.text, s.extractErr
}

func (s *stubPDFService) Annotate(context.Context, []byte, *models.DetectionAnalysis) ([]byte, error) {
	return s.annotated, s.annotateErr
}

func newTestDetector(pdf PDFService, classifier SentenceClassifier, cache AnalysisCache) *DetectionService {
	return NewDetectionService(pdf, classifier, cache, stubSentenceTokenizer{}, NewDefaultLogger(), time.Minute)
}

func TestDetectionServiceAnalyzePDF(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts, classifies and counts words", func(t *testing.T) {
		pdf := &stubPDFService{text: "The model is impressive. I wrote this myself."}
		detector := newTestDetector(pdf, NewMockClassifier(), nil)

		result, err := detector.AnalyzePDF(ctx, []byte("%PDF-fake"))
		require.NoError(t, err)

		assert.NotEmpty(t, result.ID)
		assert.Len(t, result.Sentences, 2)
		assert.Equal(t, 8, result.WordCount)
		assert.False(t, result.Cached)
	})

	t.Run("empty upload is rejected", func(t *testing.T) {
		detector := newTestDetector(&stubPDFService{}, NewMockClassifier(), nil)

		_, err := detector.AnalyzePDF(ctx, nil)
		require.Error(t, err)
		appErr, ok := errors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeEmptyInput, appErr.Code)
	})

	t.Run("whitespace-only extraction is rejected", func(t *testing.T) {
		detector := newTestDetector(&stubPDFService{text: "  \n \t "}, NewMockClassifier(), nil)

		_, err := detector.AnalyzePDF(ctx, []byte("%PDF-fake"))
		require.Error(t, err)
		appErr, ok := errors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodePDFNoText, appErr.Code)
	})

	t.Run("classifier failure is surfaced", func(t *testing.T) {
		classifier := NewMockClassifier()
		classifier.ClassifyFunc = func(context.Context, string) (*models.DetectionAnalysis, error) {
			return nil, errors.NewExternalServiceError(errors.ErrCodeClassifierFailed, "down", nil)
		}
		detector := newTestDetector(&stubPDFService{text: "Some text."}, classifier, nil)

		_, err := detector.AnalyzePDF(ctx, []byte("%PDF-fake"))
		require.Error(t, err)
	})

	t.Run("second upload of the same document hits the cache", func(t *testing.T) {
		cache := NewInMemoryCache(10, time.Minute)
		defer cache.Stop()

		calls := 0
		classifier := NewMockClassifier()
		classifier.ClassifyFunc = func(ctx context.Context, text string) (*models.DetectionAnalysis, error) {
			calls++
			return defaultClassify(ctx, text)
		}
		detector := newTestDetector(&stubPDFService{text: "Plain human prose."}, classifier, cache)

		first, err := detector.AnalyzePDF(ctx, []byte("%PDF-doc"))
		require.NoError(t, err)
		assert.False(t, first.Cached)

		second, err := detector.AnalyzePDF(ctx, []byte("%PDF-doc"))
		require.NoError(t, err)
		assert.True(t, second.Cached)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, calls)
	})

	t.Run("different documents do not share cache entries", func(t *testing.T) {
		cache := NewInMemoryCache(10, time.Minute)
		defer cache.Stop()

		detector := newTestDetector(&stubPDFService{text: "Plain human prose."}, NewMockClassifier(), cache)

		first, err := detector.AnalyzePDF(ctx, []byte("%PDF-one"))
		require.NoError(t, err)
		second, err := detector.AnalyzePDF(ctx, []byte("%PDF-two"))
		require.NoError(t, err)

		assert.False(t, second.Cached)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestDetectionServiceAnnotatePDF(t *testing.T) {
	ctx := context.Background()

	t.Run("returns annotated bytes with the analysis", func(t *testing.T) {
		pdf := &stubPDFService{
			text:      "Some human prose.",
			annotated: []byte("%PDF-annotated"),
		}
		detector := newTestDetector(pdf, NewMockClassifier(), nil)

		annotated, result, err := detector.AnnotatePDF(ctx, []byte("%PDF-fake"))
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-annotated"), annotated)
		assert.NotNil(t, result)
	})

	t.Run("annotation failure is surfaced", func(t *testing.T) {
		pdf := &stubPDFService{
			text:        "Some human prose.",
			annotateErr: errors.NewInternalError(errors.ErrCodePDFAnnotation, "stamp failed", nil),
		}
		detector := newTestDetector(pdf, NewMockClassifier(), nil)

		_, _, err := detector.AnnotatePDF(ctx, []byte("%PDF-fake"))
		require.Error(t, err)
	})
}
