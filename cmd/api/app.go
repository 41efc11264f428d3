package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"margdarshak.in/internal/ai"
	"margdarshak.in/internal/app"
	"margdarshak.in/internal/appconf"
	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/logging"
	"margdarshak.in/internal/metrics"
	"margdarshak.in/internal/restapi"
	"margdarshak.in/internal/routing"
	"margdarshak.in/internal/transit"
	"margdarshak.in/internal/tripstore"
	"margdarshak.in/internal/weather"
)

const dbStatsInterval = 15 * time.Second

// ParseAPIKeys splits a comma-separated string of API keys and trims whitespace from each key.
// Returns an empty slice if the input is empty.
func ParseAPIKeys(apiKeysFlag string) []string {
	if apiKeysFlag == "" {
		return []string{}
	}

	keys := strings.Split(apiKeysFlag, ",")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	return keys
}

// BuildApplication creates and initializes the Application with all dependencies.
// Optional integrations degrade rather than fail: a missing Groq key disables
// the assistant and a missing ORS key leaves routing on the haversine fallback.
func BuildApplication(cfg appconf.Config) (*app.Application, error) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	realClock := clock.RealClock{}

	store, err := tripstore.Open(cfg.DataPath, realClock)
	if err != nil {
		return nil, fmt.Errorf("failed to open trip store: %w", err)
	}

	m := metrics.NewWithLogger(logger)
	m.StartDBStatsCollector(store.DB(), dbStatsInterval)

	roads := routing.NewClient(cfg.ORSAPIKey, logger)
	engine := transit.NewEngine(realClock, logger, roads)

	coreApp := &app.Application{
		Config:    cfg,
		Logger:    logger,
		Clock:     realClock,
		Metrics:   m,
		Engine:    engine,
		TripStore: store,
		Assistant: ai.NewAssistant(cfg.GroqAPIKey, logger),
		Weather:   weather.NewService(realClock, logger),
	}

	if coreApp.Assistant == nil {
		logger.Info("no Groq API key configured, travel assistant disabled")
	}

	return coreApp, nil
}

// CreateServer creates and configures the HTTP server with routes and middleware.
// Applies security headers, request IDs, metrics collection, and request logging.
func CreateServer(coreApp *app.Application, cfg appconf.Config) (*http.Server, *restapi.RestAPI) {
	api := restapi.NewRestAPI(coreApp)

	mux := http.NewServeMux()
	api.SetRoutes(mux)

	// Wrap with security middleware
	secureHandler := api.WithSecurityHeaders(mux)

	// Tag each request with an ID and record metrics
	handler := restapi.RequestIDMiddleware(secureHandler)
	handler = restapi.MetricsHandler(coreApp.Metrics)(handler)

	// Add request logging middleware (outermost)
	requestLogger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	requestLogMiddleware := restapi.NewRequestLoggingMiddleware(requestLogger)
	handler = requestLogMiddleware(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(coreApp.Logger.Handler(), slog.LevelError),
	}

	return srv, api
}

// Run manages the server lifecycle with graceful shutdown.
// Starts the server in a goroutine, waits for shutdown signals (SIGINT, SIGTERM),
// and performs graceful shutdown with a 30-second timeout.
// Returns an error if the server fails to start or shutdown fails.
func Run(srv *http.Server, coreApp *app.Application, api *restapi.RestAPI) error {
	coreApp.Logger.Info("starting server", "addr", srv.Addr)

	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to capture server errors
	serverErrors := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Wait for either shutdown signal or server error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
		coreApp.Logger.Info("shutting down server...")
	}

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := srv.Shutdown(shutdownCtx); err != nil {
		coreApp.Logger.Error("server forced to shutdown", "error", err)
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	// Stop background work and close the store
	if api != nil {
		api.Shutdown()
	}
	if coreApp.Metrics != nil {
		coreApp.Metrics.Shutdown()
	}
	if coreApp.TripStore != nil {
		logging.SafeCloseWithLogging(coreApp.TripStore, coreApp.Logger, "trip store")
	}

	coreApp.Logger.Info("server exited")
	return nil
}
