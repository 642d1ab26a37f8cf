package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ai-text-toolkit/config"
	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
)

// MockHumanizer implements services.Humanizer for testing
type MockHumanizer struct {
	mock.Mock
}

func (m *MockHumanizer) Humanize(ctx context.Context, text string, opts models.HumanizeOptions) (*models.HumanizeResult, error) {
	args := m.Called(ctx, text, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HumanizeResult), args.Error(1)
}

// MockTextRewriter implements services.TextRewriter for testing
type MockTextRewriter struct {
	mock.Mock
}

func (m *MockTextRewriter) RewriteText(ctx context.Context, text string) (*models.RewriteResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RewriteResult), args.Error(1)
}

func humanizerTestConfig() *config.HumanizerConfig {
	return &config.HumanizerConfig{
		SynonymRate:    0.2,
		TransitionRate: 0.2,
		MaxInputBytes:  1 << 10,
	}
}

func humanizeTestRouter(handler *HumanizeHandler) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/humanize", handler.Humanize).Methods("POST")
	api.HandleFunc("/rewrite", handler.Rewrite).Methods("POST")
	return router
}

func postJSON(t *testing.T, router *mux.Router, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHumanizeEndpoint(t *testing.T) {
	t.Run("successful humanization with default rates", func(t *testing.T) {
		mockHumanizer := new(MockHumanizer)
		handler := NewHumanizeHandler(mockHumanizer, nil, nil, humanizerTestConfig(), nil)
		router := humanizeTestRouter(handler)

		expected := &models.HumanizeResult{
			ID:                 "run-1",
			Text:               "It is good.",
			CitationsProtected: 0,
			Original:           models.TextStats{Words: 2, Sentences: 1},
			Result:             models.TextStats{Words: 3, Sentences: 1},
		}
		mockHumanizer.On("Humanize", mock.Anything, "It's good.",
			models.HumanizeOptions{SynonymRate: 0.2, TransitionRate: 0.2}).Return(expected, nil)

		rec := postJSON(t, router, "/api/v1/humanize", models.HumanizeRequest{Text: "It's good."})

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp models.HumanizeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "run-1", resp.ID)
		assert.Equal(t, "It is good.", resp.Text)
		mockHumanizer.AssertExpectations(t)
	})

	t.Run("request rates override defaults", func(t *testing.T) {
		mockHumanizer := new(MockHumanizer)
		handler := NewHumanizeHandler(mockHumanizer, nil, nil, humanizerTestConfig(), nil)
		router := humanizeTestRouter(handler)

		mockHumanizer.On("Humanize", mock.Anything, "Text here.",
			models.HumanizeOptions{SynonymRate: 0.8, TransitionRate: 0.0}).
			Return(&models.HumanizeResult{ID: "run-2", Text: "Text here."}, nil)

		synonymRate := 0.8
		transitionRate := 0.0
		rec := postJSON(t, router, "/api/v1/humanize", models.HumanizeRequest{
			Text:           "Text here.",
			SynonymRate:    &synonymRate,
			TransitionRate: &transitionRate,
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		mockHumanizer.AssertExpectations(t)
	})

	t.Run("missing text is a 400", func(t *testing.T) {
		handler := NewHumanizeHandler(new(MockHumanizer), nil, nil, humanizerTestConfig(), nil)
		router := humanizeTestRouter(handler)

		rec := postJSON(t, router, "/api/v1/humanize", models.HumanizeRequest{Text: ""})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized text is a 400", func(t *testing.T) {
		handler := NewHumanizeHandler(new(MockHumanizer), nil, nil, humanizerTestConfig(), nil)
		router := humanizeTestRouter(handler)

		big := make([]byte, (1<<10)+1)
		for i := range big {
			big[i] = 'a'
		}
		rec := postJSON(t, router, "/api/v1/humanize", models.HumanizeRequest{Text: string(big)})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid JSON is a 400", func(t *testing.T) {
		handler := NewHumanizeHandler(new(MockHumanizer), nil, nil, humanizerTestConfig(), nil)
		router := humanizeTestRouter(handler)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/humanize", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("pipeline error maps to its HTTP status", func(t *testing.T) {
		mockHumanizer := new(MockHumanizer)
		handler := NewHumanizeHandler(mockHumanizer, nil, nil, humanizerTestConfig(), nil)
		router := humanizeTestRouter(handler)

		mockHumanizer.On("Humanize", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.NewValidationError(errors.ErrCodeInvalidRange, "bad rate", nil))

		rec := postJSON(t, router, "/api/v1/humanize", models.HumanizeRequest{Text: "Text."})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var apiErr models.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, errors.ErrCodeInvalidRange, apiErr.Code)
	})
}

func TestRewriteEndpoint(t *testing.T) {
	t.Run("successful rewrite", func(t *testing.T) {
		mockRewriter := new(MockTextRewriter)
		handler := NewHumanizeHandler(new(MockHumanizer), mockRewriter, nil, humanizerTestConfig(), nil)
		router := humanizeTestRouter(handler)

		mockRewriter.On("RewriteText", mock.Anything, "Original text.").
			Return(&models.RewriteResult{ID: "run-3", Text: "Rewritten text."}, nil)

		rec := postJSON(t, router, "/api/v1/rewrite", models.RewriteRequest{Text: "Original text."})

		assert.Equal(t, http.StatusOK, rec.Code)
		var resp models.RewriteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Rewritten text.", resp.Text)
		mockRewriter.AssertExpectations(t)
	})

	t.Run("disabled rewriter is a 404", func(t *testing.T) {
		handler := NewHumanizeHandler(new(MockHumanizer), nil, nil, humanizerTestConfig(), nil)
		router := humanizeTestRouter(handler)

		rec := postJSON(t, router, "/api/v1/rewrite", models.RewriteRequest{Text: "Text."})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
