package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"ai-text-toolkit/config"
	"ai-text-toolkit/handlers"
	"ai-text-toolkit/services"
)

const version = "1.0.0"

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	router     *mux.Router
	httpServer *http.Server
	services   *services.ServiceContainer

	// Handlers
	humanizeHandler *handlers.HumanizeHandler
	detectHandler   *handlers.DetectHandler
	historyHandler  *handlers.HistoryHandler
	systemHandler   *handlers.SystemHandler
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	serviceFactory := services.NewServiceFactory(cfg)
	serviceContainer, err := serviceFactory.CreateServices()
	if err != nil {
		return nil, err
	}

	router := mux.NewRouter()

	humanizeHandler := handlers.NewHumanizeHandler(
		serviceContainer.Humanizer,
		serviceContainer.Rewriter,
		serviceContainer.HistoryStore,
		&cfg.Humanizer,
		serviceContainer.Logger,
	)
	detectHandler := handlers.NewDetectHandler(
		serviceContainer.Detector,
		serviceContainer.HistoryStore,
		cfg.Server.MaxUploadBytes,
		serviceContainer.Logger,
	)
	historyHandler := handlers.NewHistoryHandler(
		serviceContainer.HistoryStore,
		serviceContainer.Logger,
	)
	systemHandler := handlers.NewSystemHandler(
		serviceContainer.HealthService,
		serviceContainer.MetricsService,
		serviceContainer.CacheService,
		version,
	)

	server := &Server{
		config:          cfg,
		router:          router,
		services:        serviceContainer,
		humanizeHandler: humanizeHandler,
		detectHandler:   detectHandler,
		historyHandler:  historyHandler,
		systemHandler:   systemHandler,
		httpServer: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}

	server.setupRoutes()
	server.setupMiddleware()

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {

	// API version prefix
	api := s.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", s.systemHandler.Health).Methods("GET", "OPTIONS")

	// Performance and monitoring endpoints
	if s.config.Features.MetricsEnabled && s.services.MetricsService != nil {
		api.HandleFunc("/metrics", s.systemHandler.Metrics).Methods("GET")
	}
	api.HandleFunc("/cache/stats", s.systemHandler.CacheStats).Methods("GET")
	api.HandleFunc("/cache/clear", s.systemHandler.CacheClear).Methods("POST")

	// Humanization routes
	api.HandleFunc("/humanize", s.humanizeHandler.Humanize).Methods("POST", "OPTIONS")
	if s.config.Features.EnableRewriter {
		api.HandleFunc("/rewrite", s.humanizeHandler.Rewrite).Methods("POST", "OPTIONS")
	}

	// Detection routes
	api.HandleFunc("/detect", s.detectHandler.Detect).Methods("POST", "OPTIONS")
	api.HandleFunc("/detect/annotated", s.detectHandler.DetectAnnotated).Methods("POST", "OPTIONS")

	// History routes
	if s.config.Features.EnableHistory && s.services.HistoryStore != nil {
		api.HandleFunc("/history", s.historyHandler.List).Methods("GET", "OPTIONS")
	}
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	// CORS must be first to handle preflight requests
	s.router.Use(s.corsMiddleware)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.contentTypeMiddleware)

	if s.config.Features.MetricsEnabled && s.services.MetricsService != nil {
		s.router.Use(s.metricsMiddleware)
	}
}

// Start starts the HTTP server and blocks until shutdown
func (s *Server) Start() error {
	log.Printf("Starting server on port %s", s.config.Server.Port)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	return s.Shutdown()
}

// Shutdown gracefully shuts down the server and releases resources
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	return s.services.Close()
}
