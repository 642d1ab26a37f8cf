package handlers

import (
	"net/http"

	"ai-text-toolkit/models"
	"ai-text-toolkit/services"
)

// SystemHandler serves health, metrics and cache administration.
type SystemHandler struct {
	health  services.HealthService
	metrics services.MetricsService
	cache   services.AnalysisCache
	version string
}

// NewSystemHandler creates a new system handler. metrics and cache may
// be nil when the corresponding features are disabled.
func NewSystemHandler(
	health services.HealthService,
	metrics services.MetricsService,
	cache services.AnalysisCache,
	version string,
) *SystemHandler {
	return &SystemHandler{
		health:  health,
		metrics: metrics,
		cache:   cache,
		version: version,
	}
}

// Health handles GET /api/v1/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	systemHealth := h.health.CheckHealth(r.Context())

	components := make(map[string]models.ComponentStatus, len(systemHealth.Components))
	for name, component := range systemHealth.Components {
		components[name] = models.ComponentStatus{
			Status:  string(component.Status),
			Message: component.Message,
		}
	}

	statusCode := http.StatusOK
	if systemHealth.Status == services.HealthStatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	writeJSONResponse(w, statusCode, models.HealthResponse{
		Status:     string(systemHealth.Status),
		Version:    h.version,
		Timestamp:  systemHealth.Timestamp,
		Uptime:     systemHealth.Uptime.String(),
		Components: components,
	})
}

// Metrics handles GET /api/v1/metrics
func (h *SystemHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.metrics == nil {
		writeErrorResponse(w, http.StatusNotFound, "Metrics are not enabled", "")
		return
	}
	writeJSONResponse(w, http.StatusOK, h.metrics.GetMetrics())
}

// CacheStats handles GET /api/v1/cache/stats
func (h *SystemHandler) CacheStats(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		writeErrorResponse(w, http.StatusNotFound, "Caching is not enabled", "")
		return
	}
	writeJSONResponse(w, http.StatusOK, h.cache.Stats())
}

// CacheClear handles POST /api/v1/cache/clear
func (h *SystemHandler) CacheClear(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		writeErrorResponse(w, http.StatusNotFound, "Caching is not enabled", "")
		return
	}
	h.cache.Clear(r.Context())
	writeJSONResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}
