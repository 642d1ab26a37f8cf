package services

import (
	"context"
	"fmt"
	"time"

	"ai-text-toolkit/models"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
	HealthStatusDegraded  HealthStatus = "degraded"
)

// ComponentHealth represents the health of a single component
type ComponentHealth struct {
	Name      string                 `json:"name"`
	Status    HealthStatus           `json:"status"`
	Message   string                 `json:"message,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Duration  time.Duration          `json:"duration"`
}

// SystemHealth represents the overall system health
type SystemHealth struct {
	Status     HealthStatus               `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Uptime     time.Duration              `json:"uptime"`
	Version    string                     `json:"version,omitempty"`
	Components map[string]ComponentHealth `json:"components"`
}

// HealthChecker interface for health checking
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) ComponentHealth
}

// HealthService manages health checks for the system
type HealthService interface {
	RegisterChecker(checker HealthChecker)
	CheckHealth(ctx context.Context) SystemHealth
}

// DefaultHealthService implements HealthService
type DefaultHealthService struct {
	checkers  map[string]HealthChecker
	startTime time.Time
	version   string
	logger    Logger
}

// NewHealthService creates a new health service
func NewHealthService(version string, logger Logger) *DefaultHealthService {
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &DefaultHealthService{
		checkers:  make(map[string]HealthChecker),
		startTime: time.Now(),
		version:   version,
		logger:    logger,
	}
}

// RegisterChecker registers a health checker
func (h *DefaultHealthService) RegisterChecker(checker HealthChecker) {
	h.checkers[checker.Name()] = checker
	h.logger.Info("Health checker registered", String("component", checker.Name()))
}

// CheckHealth performs health checks on all registered components
func (h *DefaultHealthService) CheckHealth(ctx context.Context) SystemHealth {
	start := time.Now()
	components := make(map[string]ComponentHealth)
	overallStatus := HealthStatusHealthy

	for name, checker := range h.checkers {
		componentHealth := h.checkComponentWithTimeout(ctx, checker, 5*time.Second)
		components[name] = componentHealth

		switch componentHealth.Status {
		case HealthStatusUnhealthy:
			overallStatus = HealthStatusUnhealthy
		case HealthStatusDegraded:
			if overallStatus == HealthStatusHealthy {
				overallStatus = HealthStatusDegraded
			}
		}
	}

	systemHealth := SystemHealth{
		Status:     overallStatus,
		Timestamp:  time.Now(),
		Uptime:     time.Since(h.startTime),
		Version:    h.version,
		Components: components,
	}

	h.logger.Debug("Health check completed",
		String("status", string(overallStatus)),
		Duration("duration", time.Since(start)),
		Int("components_checked", len(components)))

	return systemHealth
}

// checkComponentWithTimeout checks a component with a timeout
func (h *DefaultHealthService) checkComponentWithTimeout(ctx context.Context, checker HealthChecker, timeout time.Duration) ComponentHealth {
	start := time.Now()

	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resultChan := make(chan ComponentHealth, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				resultChan <- ComponentHealth{
					Name:      checker.Name(),
					Status:    HealthStatusUnhealthy,
					Message:   fmt.Sprintf("Health check panicked: %v", r),
					Timestamp: time.Now(),
					Duration:  time.Since(start),
				}
			}
		}()

		result := checker.Check(timeoutCtx)
		result.Duration = time.Since(start)
		resultChan <- result
	}()

	select {
	case result := <-resultChan:
		return result
	case <-timeoutCtx.Done():
		return ComponentHealth{
			Name:      checker.Name(),
			Status:    HealthStatusUnhealthy,
			Message:   "Health check timed out",
			Timestamp: time.Now(),
			Duration:  timeout,
		}
	}
}

// DatabaseHealthChecker checks history store connectivity
type DatabaseHealthChecker struct {
	name  string
	store HistoryStore
}

// NewDatabaseHealthChecker creates a database health checker
func NewDatabaseHealthChecker(name string, store HistoryStore) *DatabaseHealthChecker {
	return &DatabaseHealthChecker{
		name:  name,
		store: store,
	}
}

// Name returns the checker name
func (d *DatabaseHealthChecker) Name() string {
	return d.name
}

// Check performs the database health check
func (d *DatabaseHealthChecker) Check(ctx context.Context) ComponentHealth {
	start := time.Now()

	err := d.store.HealthCheck(ctx)

	health := ComponentHealth{
		Name:      d.name,
		Timestamp: time.Now(),
		Duration:  time.Since(start),
	}

	if err != nil {
		health.Status = HealthStatusUnhealthy
		health.Message = err.Error()
	} else {
		health.Status = HealthStatusHealthy
		health.Message = "Database connection successful"
	}

	return health
}

// CacheHealthChecker checks analysis cache health
type CacheHealthChecker struct {
	name  string
	cache AnalysisCache
}

// NewCacheHealthChecker creates a cache health checker
func NewCacheHealthChecker(name string, cache AnalysisCache) *CacheHealthChecker {
	return &CacheHealthChecker{
		name:  name,
		cache: cache,
	}
}

// Name returns the checker name
func (c *CacheHealthChecker) Name() string {
	return c.name
}

// Check performs the cache health check by round-tripping a sentinel
// entry.
func (c *CacheHealthChecker) Check(ctx context.Context) ComponentHealth {
	start := time.Now()

	health := ComponentHealth{
		Name:      c.name,
		Timestamp: time.Now(),
	}

	testKey := "health_check_test"
	probe := &models.DetectionResult{ID: "health-probe"}

	c.cache.Set(ctx, testKey, probe, time.Minute)

	result, ok := c.cache.Get(ctx, testKey)
	if !ok || result.ID != probe.ID {
		health.Status = HealthStatusUnhealthy
		health.Message = "Cache round-trip failed"
		health.Duration = time.Since(start)
		return health
	}

	c.cache.Delete(ctx, testKey)

	stats := c.cache.Stats()

	health.Status = HealthStatusHealthy
	health.Message = "Cache operations successful"
	health.Duration = time.Since(start)
	health.Details = map[string]interface{}{
		"hit_rate": stats.HitRate,
		"size":     stats.Size,
		"max_size": stats.MaxSize,
	}

	return health
}

// InferenceHealthChecker reports whether an inference endpoint is
// configured. It does not call the model, a probe request would be
// billed like a real one.
type InferenceHealthChecker struct {
	name     string
	endpoint string
}

// NewInferenceHealthChecker creates an inference endpoint checker
func NewInferenceHealthChecker(name, endpoint string) *InferenceHealthChecker {
	return &InferenceHealthChecker{
		name:     name,
		endpoint: endpoint,
	}
}

// Name returns the checker name
func (i *InferenceHealthChecker) Name() string {
	return i.name
}

// Check reports endpoint configuration status
func (i *InferenceHealthChecker) Check(_ context.Context) ComponentHealth {
	health := ComponentHealth{
		Name:      i.name,
		Timestamp: time.Now(),
	}

	if i.endpoint == "" {
		health.Status = HealthStatusDegraded
		health.Message = "No endpoint configured"
		return health
	}

	health.Status = HealthStatusHealthy
	health.Message = "Endpoint configured"
	health.Details = map[string]interface{}{"endpoint": i.endpoint}
	return health
}
