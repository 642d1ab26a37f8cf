package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"ai-text-toolkit/config"
	"ai-text-toolkit/errors"
)

// inferenceClient is the shared HTTP transport for the external
// inference endpoints (classifier and rewriter). Requests carry an
// operation name and free-form options; responses follow the
// success/data/error envelope.
type inferenceClient struct {
	config     *config.InferenceConfig
	httpClient *http.Client
	service    string
	errCode    string
}

// InferenceRequest is the request envelope for the inference API.
type InferenceRequest struct {
	Text      string                 `json:"text"`
	Operation string                 `json:"operation"`
	Options   map[string]interface{} `json:"options,omitempty"`
}

func newInferenceClient(cfg *config.InferenceConfig, service, errCode string) *inferenceClient {
	return &inferenceClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		service: service,
		errCode: errCode,
	}
}

// executeWithRetry posts the request with retry and exponential backoff.
func (c *inferenceClient) executeWithRetry(ctx context.Context, request InferenceRequest, response interface{}) error {
	retryer := errors.NewRetryer(errors.InferenceRetryConfig())

	return retryer.Execute(ctx, func() error {
		return c.makeHTTPRequest(ctx, request, response)
	})
}

// makeHTTPRequest makes the actual HTTP request to the inference API.
func (c *inferenceClient) makeHTTPRequest(ctx context.Context, request InferenceRequest, response interface{}) error {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return errors.NewInternalError(
			errors.ErrCodeSerializationError,
			"Failed to marshal "+c.service+" request",
			err,
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return errors.NewInternalError(
			errors.ErrCodeProcessingError,
			"Failed to create HTTP request",
			err,
		)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.NewNetworkError(
			errors.ErrCodeNetworkConnection,
			c.service+" API request failed",
			err,
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewNetworkError(
			errors.ErrCodeNetworkConnection,
			"Failed to read "+c.service+" API response",
			err,
		)
	}

	if resp.StatusCode >= 400 {
		return c.handleHTTPError(resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, response); err != nil {
		return errors.NewInternalError(
			errors.ErrCodeSerializationError,
			"Failed to unmarshal "+c.service+" API response",
			err,
		)
	}

	return nil
}

// handleHTTPError converts HTTP errors to appropriate AppErrors.
func (c *inferenceClient) handleHTTPError(statusCode int, body string) error {
	cause := fmt.Errorf("HTTP %d: %s", statusCode, body)

	switch {
	case statusCode == http.StatusUnauthorized:
		return errors.NewAuthError(
			errors.ErrCodeInvalidCredentials,
			c.service+" API authentication failed",
			cause,
		)
	case statusCode == http.StatusTooManyRequests:
		return errors.NewRateLimitError(
			errors.ErrCodeRateLimited,
			c.service+" API rate limit exceeded",
			cause,
		)
	case statusCode >= 500:
		return errors.NewExternalServiceError(
			c.errCode,
			c.service+" API server error",
			cause,
		)
	default:
		return errors.NewValidationError(
			errors.ErrCodeInvalidInput,
			c.service+" API rejected the request",
			cause,
		)
	}
}
