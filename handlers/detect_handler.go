package handlers

import (
	"io"
	"net/http"
	"strings"
	"time"

	"ai-text-toolkit/errors"
	"ai-text-toolkit/models"
	"ai-text-toolkit/services"
)

// DetectHandler serves the PDF AI-content detection endpoints.
type DetectHandler struct {
	detector       services.Detector
	history        services.HistoryStore
	maxUploadBytes int64
	logger         services.Logger
}

// NewDetectHandler creates a new detect handler. history may be nil
// when run persistence is disabled.
func NewDetectHandler(
	detector services.Detector,
	history services.HistoryStore,
	maxUploadBytes int64,
	logger services.Logger,
) *DetectHandler {
	if logger == nil {
		logger = services.NewDefaultLogger()
	}
	return &DetectHandler{
		detector:       detector,
		history:        history,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Detect handles POST /api/v1/detect
func (h *DetectHandler) Detect(w http.ResponseWriter, r *http.Request) {
	data, err := h.readUpload(r)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	result, err := h.detector.AnalyzePDF(r.Context(), data)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	h.recordRun(r, result)

	writeJSONResponse(w, http.StatusOK, models.DetectionResponse{
		ID:          result.ID,
		Sentences:   result.Sentences,
		Percentages: result.Percentages,
		WordCount:   result.WordCount,
		Cached:      result.Cached,
	})
}

// DetectAnnotated handles POST /api/v1/detect/annotated and responds
// with the annotated PDF itself.
func (h *DetectHandler) DetectAnnotated(w http.ResponseWriter, r *http.Request) {
	data, err := h.readUpload(r)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	annotated, result, err := h.detector.AnnotatePDF(r.Context(), data)
	if err != nil {
		writeAppErrorResponse(w, err)
		return
	}

	h.recordRun(r, result)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="annotated.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(annotated); err != nil {
		h.logger.Warn("failed to write annotated PDF response",
			services.ErrorField("error", err))
	}
}

// readUpload reads the uploaded PDF from the multipart "file" field.
func (h *DetectHandler) readUpload(r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, h.maxUploadBytes)

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		return nil, errors.NewValidationError(
			errors.ErrCodeInvalidInput,
			"Invalid multipart upload",
			err,
		)
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, errors.NewValidationError(
			errors.ErrCodeMissingField,
			"Required file field is missing: file",
			err,
		)
	}
	defer file.Close()

	if header.Filename != "" && !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return nil, errors.NewValidationError(
			errors.ErrCodeInvalidInput,
			"Only PDF files are supported",
			nil,
		)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.NewValidationError(
			errors.ErrCodeInvalidInput,
			"Failed to read uploaded file",
			err,
		)
	}
	if len(data) == 0 {
		return nil, errors.NewValidationError(
			errors.ErrCodeEmptyInput,
			"Uploaded file is empty",
			nil,
		)
	}

	return data, nil
}

// recordRun persists a history entry. Failures are logged, never
// surfaced to the caller.
func (h *DetectHandler) recordRun(r *http.Request, result *models.DetectionResult) {
	if h.history == nil || result.Cached {
		return
	}
	record := &models.AnalysisRecord{
		ID:             result.ID,
		Tool:           models.ToolDetect,
		InputWords:     result.WordCount,
		InputSentences: len(result.Sentences),
		Percentages:    result.Percentages,
		CreatedAt:      time.Now().UTC(),
	}
	if err := h.history.SaveRun(r.Context(), record); err != nil {
		h.logger.Warn("failed to record analysis run",
			services.String("tool", record.Tool),
			services.ErrorField("error", err))
	}
}
