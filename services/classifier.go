package services

import (
	"context"

	"ai-text-toolkit/config"
	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
)

// InferenceClassifier implements SentenceClassifier against the remote
// detection model. The model is a pre-trained black box: it receives the
// full document text and returns one of four labels per sentence.
type InferenceClassifier struct {
	client *inferenceClient
}

// classificationResponse is the response envelope for classify_sentences.
type classificationResponse struct {
	Success bool                `json:"success"`
	Data    []classifiedPayload `json:"data"`
	Error   string              `json:"error,omitempty"`
}

type classifiedPayload struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// NewInferenceClassifier creates a classifier client.
func NewInferenceClassifier(cfg *config.InferenceConfig) *InferenceClassifier {
	return &InferenceClassifier{
		client: newInferenceClient(cfg, "classifier", errors.ErrCodeClassifierFailed),
	}
}

// Classify implements SentenceClassifier.Classify.
func (c *InferenceClassifier) Classify(ctx context.Context, text string) (*models.DetectionAnalysis, error) {
	if text == "" {
		return nil, errors.NewValidationError(
			errors.ErrCodeEmptyInput,
			"Text cannot be empty",
			nil,
		)
	}

	request := InferenceRequest{
		Text:      text,
		Operation: "classify_sentences",
		Options: map[string]interface{}{
			"labels": labelStrings(),
		},
	}

	var response classificationResponse
	if err := c.client.executeWithRetry(ctx, request, &response); err != nil {
		return nil, errors.WrapError(err, errors.ErrTypeExternal,
			errors.ErrCodeClassifierFailed, "Failed to classify sentences")
	}

	if !response.Success {
		return nil, errors.NewExternalServiceError(
			errors.ErrCodeClassifierFailed,
			"Classifier API returned error: "+response.Error,
			nil,
		)
	}

	sentences := make([]models.SentenceClassification, len(response.Data))
	for i, item := range response.Data {
		sentences[i] = models.SentenceClassification{
			Text:  item.Text,
			Label: models.Label(item.Label),
		}
	}

	return &models.DetectionAnalysis{
		Sentences:   sentences,
		Percentages: LabelPercentages(sentences),
	}, nil
}

// LabelPercentages computes the share of each known label, in percent.
// Every known label is present in the result, zero-valued when unused.
func LabelPercentages(sentences []models.SentenceClassification) map[models.Label]float64 {
	percentages := make(map[models.Label]float64, len(models.KnownLabels))
	for _, label := range models.KnownLabels {
		percentages[label] = 0
	}
	if len(sentences) == 0 {
		return percentages
	}

	for _, s := range sentences {
		percentages[s.Label]++
	}
	for label, count := range percentages {
		percentages[label] = count / float64(len(sentences)) * 100
	}
	return percentages
}

func labelStrings() []string {
	out := make([]string, len(models.KnownLabels))
	for i, label := range models.KnownLabels {
		out[i] = string(label)
	}
	return out
}
