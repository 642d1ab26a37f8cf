package handlers

import (
	"net/http"
	"time"

	"ai-text-toolkit/config"
	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
	"ai-text-toolkit/services"
)

// HumanizeHandler serves the text humanization and rewriting endpoints.
type HumanizeHandler struct {
	humanizer services.Humanizer
	rewriter  services.TextRewriter
	history   services.HistoryStore
	config    *config.HumanizerConfig
	logger    services.Logger
}

// NewHumanizeHandler creates a new humanize handler. rewriter and
// history may be nil when the corresponding features are disabled.
func NewHumanizeHandler(
	humanizer services.Humanizer,
	rewriter services.TextRewriter,
	history services.HistoryStore,
	cfg *config.HumanizerConfig,
	logger services.Logger,
) *HumanizeHandler {
	if logger == nil {
		logger = services.NewDefaultLogger()
	}
	return &HumanizeHandler{
		humanizer: humanizer,
		rewriter:  rewriter,
		history:   history,
		config:    cfg,
		logger:    logger,
	}
}

// Humanize handles POST /api/v1/humanize
func (h *HumanizeHandler) Humanize(w http.ResponseWriter, r *http.Request) {
	var req models.HumanizeRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	if err := h.validateText(req.Text); err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	opts := models.HumanizeOptions{
		SynonymRate:    h.config.SynonymRate,
		TransitionRate: h.config.TransitionRate,
	}
	if req.SynonymRate != nil {
		opts.SynonymRate = *req.SynonymRate
	}
	if req.TransitionRate != nil {
		opts.TransitionRate = *req.TransitionRate
	}

	result, err := h.humanizer.Humanize(r.Context(), req.Text, opts)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	h.recordRun(r, &models.AnalysisRecord{
		ID:              result.ID,
		Tool:            models.ToolHumanize,
		InputWords:      result.Original.Words,
		InputSentences:  result.Original.Sentences,
		OutputWords:     result.Result.Words,
		OutputSentences: result.Result.Sentences,
	})

	writeJSONResponse(w, http.StatusOK, models.HumanizeResponse{
		ID:                 result.ID,
		Text:               result.Text,
		CitationsProtected: result.CitationsProtected,
		Original:           result.Original,
		Result:             result.Result,
	})
}

// Rewrite handles POST /api/v1/rewrite
func (h *HumanizeHandler) Rewrite(w http.ResponseWriter, r *http.Request) {
	if h.rewriter == nil {
		writeErrorResponse(w, http.StatusNotFound, "Rewriting is not enabled", "")
		return
	}

	var req models.RewriteRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	if err := h.validateText(req.Text); err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	result, err := h.rewriter.RewriteText(r.Context(), req.Text)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	h.recordRun(r, &models.AnalysisRecord{
		ID:              result.ID,
		Tool:            models.ToolRewrite,
		InputWords:      result.Original.Words,
		InputSentences:  result.Original.Sentences,
		OutputWords:     result.Result.Words,
		OutputSentences: result.Result.Sentences,
	})

	writeJSONResponse(w, http.StatusOK, models.RewriteResponse{
		ID:       result.ID,
		Text:     result.Text,
		Original: result.Original,
		Result:   result.Result,
	})
}

func (h *HumanizeHandler) validateText(text string) error {
	if text == "" {
		return errors.NewValidationError(
			errors.ErrCodeMissingField,
			"Required field is empty: text",
			nil,
		)
	}
	if h.config.MaxInputBytes > 0 && len(text) > h.config.MaxInputBytes {
		return errors.NewValidationError(
			errors.ErrCodeInvalidRange,
			"Text exceeds the maximum input size",
			nil,
		)
	}
	return nil
}

// recordRun persists a history entry. Failures are logged, never
// surfaced to the caller.
func (h *HumanizeHandler) recordRun(r *http.Request, record *models.AnalysisRecord) {
	if h.history == nil {
		return
	}
	record.CreatedAt = time.Now().UTC()
	if err := h.history.SaveRun(r.Context(), record); err != nil {
		h.logger.Warn("failed to record analysis run",
			services.String("tool", record.Tool),
			services.ErrorField("error", err))
	}
}
