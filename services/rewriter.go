package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ai-text-toolkit/config"
	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
)

// InferenceRewriter implements SentenceRewriter against the remote
// generative model. One call rewrites one sentence; decoding options are
// deterministic so repeated calls agree.
type InferenceRewriter struct {
	client *inferenceClient
}

// rewriteResponse is the response envelope for rewrite_sentence.
type rewriteResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
	Error   string   `json:"error,omitempty"`
}

// NewInferenceRewriter creates a rewriter client.
func NewInferenceRewriter(cfg *config.InferenceConfig) *InferenceRewriter {
	return &InferenceRewriter{
		client: newInferenceClient(cfg, "rewriter", errors.ErrCodeRewriterFailed),
	}
}

// Rewrite implements SentenceRewriter.Rewrite.
func (r *InferenceRewriter) Rewrite(ctx context.Context, sentence string) (string, error) {
	if strings.TrimSpace(sentence) == "" {
		return "", errors.NewValidationError(
			errors.ErrCodeEmptyInput,
			"Sentence cannot be empty",
			nil,
		)
	}

	request := InferenceRequest{
		Text:      sentence,
		Operation: "rewrite_sentence",
		Options: map[string]interface{}{
			"prompt":    "Rewrite this sentence to sound more natural and human while preserving details.",
			"do_sample": false,
			"num_beams": 4,
		},
	}

	var response rewriteResponse
	if err := r.client.executeWithRetry(ctx, request, &response); err != nil {
		return "", errors.WrapError(err, errors.ErrTypeExternal,
			errors.ErrCodeRewriterFailed, "Failed to rewrite sentence")
	}

	if !response.Success {
		return "", errors.NewExternalServiceError(
			errors.ErrCodeRewriterFailed,
			"Rewriter API returned error: "+response.Error,
			nil,
		)
	}

	if len(response.Data) == 0 {
		// No rewrite offered, keep the original sentence
		return sentence, nil
	}

	return strings.TrimSpace(response.Data[0]), nil
}

// RewriteService implements TextRewriter: it segments text into
// sentences, rewrites each through the model and rejoins the results
// with single spaces. Citations are left in place for the model to
// preserve; no placeholder extraction happens on this path.
type RewriteService struct {
	rewriter  SentenceRewriter
	tokenizer Tokenizer
	logger    Logger
}

// NewRewriteService creates the model-based rewrite service.
func NewRewriteService(rewriter SentenceRewriter, tokenizer Tokenizer, logger Logger) *RewriteService {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &RewriteService{
		rewriter:  rewriter,
		tokenizer: tokenizer,
		logger:    logger,
	}
}

// RewriteText implements TextRewriter.RewriteText.
func (s *RewriteService) RewriteText(ctx context.Context, text string) (*models.RewriteResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewValidationError(errors.ErrCodeEmptyInput, "nothing to process", nil)
	}

	original := s.stats(text)

	sentences, err := s.tokenizer.Sentences(text)
	if err != nil {
		return nil, errors.WrapError(err, errors.ErrTypeInternal, errors.ErrCodeSegmentation,
			"sentence segmentation failed")
	}

	out := make([]string, 0, len(sentences))
	for _, sentence := range sentences {
		if strings.TrimSpace(sentence) == "" {
			continue
		}
		rewritten, err := s.rewriter.Rewrite(ctx, sentence)
		if err != nil {
			return nil, err
		}
		out = append(out, rewritten)
	}

	result := strings.Join(out, " ")

	return &models.RewriteResult{
		ID:       uuid.New().String(),
		Text:     result,
		Original: original,
		Result:   s.stats(result),
	}, nil
}

func (s *RewriteService) stats(text string) models.TextStats {
	var stats models.TextStats

	if words, err := s.tokenizer.Words(text); err == nil {
		stats.Words = len(words)
	} else {
		stats.Words = len(strings.Fields(text))
	}
	if sentences, err := s.tokenizer.Sentences(text); err == nil {
		stats.Sentences = len(sentences)
	} else if strings.TrimSpace(text) != "" {
		stats.Sentences = 1
	}

	return stats
}
