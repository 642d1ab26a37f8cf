package handlers

import (
	"net/http"

	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
	"ai-text-toolkit/services"
)

// HistoryHandler serves the analysis history endpoints.
type HistoryHandler struct {
	history services.HistoryStore
	logger  services.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(history services.HistoryStore, logger services.Logger) *HistoryHandler {
	if logger == nil {
		logger = services.NewDefaultLogger()
	}
	return &HistoryHandler{
		history: history,
		logger:  logger,
	}
}

// List handles GET /api/v1/history
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	pagination := parsePagination(r)

	records, err := h.history.ListRuns(r.Context(), pagination)
	if err != nil {
		writeAppErrorResponse(w, errors.WrapError(err, errors.ErrTypeDatabase,
			errors.ErrCodeDatabaseQuery, "Failed to list analysis runs"))
		return
	}

	writeJSONResponse(w, http.StatusOK, models.HistoryResponse{
		Items:    records,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
}
