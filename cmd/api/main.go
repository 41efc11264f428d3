package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"margdarshak.in/internal/appconf"
)

func main() {
	// Load .env if present so local runs can keep API keys out of flags
	_ = godotenv.Load()

	var cfg appconf.Config
	var apiKeysFlag string
	var envFlag string
	var configFile string

	// Parse command-line flags
	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&envFlag, "env", "development", "Environment (development|test|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma Separated API Keys (test, etc)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 100, "Requests per second per API key for rate limiting")
	flag.StringVar(&cfg.DataPath, "data-path", "./margdarshak.db", "Path to the SQLite database for trips and assistant history")
	flag.StringVar(&cfg.ORSAPIKey, "ors-api-key", "", "OpenRouteService API key for road routing (falls back to ORS_API_KEY)")
	flag.StringVar(&cfg.GroqAPIKey, "groq-api-key", "", "Groq API key for the travel assistant (falls back to GROQ_API_KEY)")
	flag.StringVar(&configFile, "config-file", "", "Path to a JSON config file (overrides other flags)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if configFile != "" {
		fileCfg, err := appconf.LoadFromFile(configFile)
		if err != nil {
			logger.Error("failed to load config file", "error", err)
			os.Exit(1)
		}
		cfg = fileCfg.ToConfig()
	} else {
		cfg.Verbose = true
		cfg.ApiKeys = ParseAPIKeys(apiKeysFlag)
		cfg.Env = appconf.EnvFlagToEnvironment(envFlag)
	}

	if cfg.ORSAPIKey == "" {
		cfg.ORSAPIKey = os.Getenv("ORS_API_KEY")
	}
	if cfg.GroqAPIKey == "" {
		cfg.GroqAPIKey = os.Getenv("GROQ_API_KEY")
	}

	// Build application with dependencies
	coreApp, err := BuildApplication(cfg)
	if err != nil {
		logger.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	// Create HTTP server
	srv, api := CreateServer(coreApp, cfg)

	// Run server with graceful shutdown
	if err := Run(srv, coreApp, api); err != nil {
		coreApp.Logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
