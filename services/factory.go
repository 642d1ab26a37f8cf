package services

import (
	"fmt"

	"ai-text-toolkit/config"
	"ai-text-toolkit/database"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	// Core services
	Humanizer Humanizer
	Rewriter  TextRewriter
	Detector  Detector

	// Database
	PostgresService *database.PostgresService
	HistoryStore    HistoryStore

	// Performance and monitoring
	CacheService   AnalysisCache
	MetricsService MetricsService
	Logger         Logger
	HealthService  HealthService
}

// ServiceFactory creates and configures all services
type ServiceFactory struct {
	config *config.Config
}

// NewServiceFactory creates a new service factory
func NewServiceFactory(cfg *config.Config) *ServiceFactory {
	return &ServiceFactory{
		config: cfg,
	}
}

// CreateServices creates and wires all services together
func (f *ServiceFactory) CreateServices() (*ServiceContainer, error) {
	logLevel := ParseLogLevel(f.config.Logging.Level)
	logger := NewStructuredLogger(logLevel, nil)

	var cacheService AnalysisCache
	var metricsService MetricsService

	if f.config.Cache.Enabled {
		cacheService = NewInMemoryCache(
			f.config.Cache.MaxSize,
			f.config.Cache.CleanupInterval,
		)
	}

	if f.config.Features.MetricsEnabled {
		metricsService = NewInMemoryMetrics()
	}

	healthService := NewHealthService("1.0.0", logger)

	// Shared NLP collaborators
	nlp := NewProseNLP()

	thesaurus, err := NewLexiconThesaurus()
	if err != nil {
		return nil, fmt.Errorf("failed to load thesaurus: %w", err)
	}

	humanizer := NewHumanizerService(nlp, nlp, thesaurus, NewDefaultRand(), logger)

	// Detection path
	pdfService := NewPDFDocumentService(logger)
	classifier := NewInferenceClassifier(&f.config.Classifier)
	detector := NewDetectionService(
		pdfService,
		classifier,
		cacheService,
		nlp,
		logger,
		f.config.Cache.DefaultTTL,
	)

	// Model-based rewriting is optional
	var rewriteService TextRewriter
	if f.config.Features.EnableRewriter {
		rewriter := NewInferenceRewriter(&f.config.Rewriter)
		rewriteService = NewRewriteService(rewriter, nlp, logger)
	}

	// Analysis history is optional
	var postgresService *database.PostgresService
	var historyStore HistoryStore
	if f.config.Features.EnableHistory {
		postgresService, err = database.NewPostgresService(&database.PostgresConfig{
			Host:     f.config.Database.Host,
			Port:     f.config.Database.Port,
			Database: f.config.Database.Database,
			User:     f.config.Database.User,
			Password: f.config.Database.Password,
			SSLMode:  f.config.Database.SSLMode,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL service: %w", err)
		}
		historyStore = database.NewHistoryRepository(postgresService.DB())
	}

	// Register health checkers
	healthService.RegisterChecker(NewInferenceHealthChecker("classifier", f.config.Classifier.Endpoint))
	if f.config.Features.EnableRewriter {
		healthService.RegisterChecker(NewInferenceHealthChecker("rewriter", f.config.Rewriter.Endpoint))
	}
	if historyStore != nil {
		healthService.RegisterChecker(NewDatabaseHealthChecker("database", historyStore))
	}
	if cacheService != nil {
		healthService.RegisterChecker(NewCacheHealthChecker("cache", cacheService))
	}

	container := &ServiceContainer{
		Humanizer:       humanizer,
		Rewriter:        rewriteService,
		Detector:        detector,
		PostgresService: postgresService,
		HistoryStore:    historyStore,
		CacheService:    cacheService,
		MetricsService:  metricsService,
		Logger:          logger,
		HealthService:   healthService,
	}

	return container, nil
}

// Close releases long-lived resources held by the container.
func (c *ServiceContainer) Close() error {
	if cache, ok := c.CacheService.(*InMemoryCache); ok {
		cache.Stop()
	}
	if c.PostgresService != nil {
		return c.PostgresService.Close()
	}
	return nil
}
