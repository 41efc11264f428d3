package app

import (
	"log/slog"

	"margdarshak.in/internal/ai"
	"margdarshak.in/internal/appconf"
	"margdarshak.in/internal/clock"
	"margdarshak.in/internal/metrics"
	"margdarshak.in/internal/transit"
	"margdarshak.in/internal/tripstore"
	"margdarshak.in/internal/weather"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config    appconf.Config
	Logger    *slog.Logger
	Clock     clock.Clock
	Metrics   *metrics.Metrics
	Engine    *transit.Engine
	TripStore *tripstore.Store
	Assistant *ai.Assistant
	Weather   *weather.Service
}
