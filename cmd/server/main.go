// Package main implements the entry point for the TrackAScholar server,
// which keeps a registry of scholarship applicants and serves it over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/trackascholar/internal/config"
	"github.com/phrazzld/trackascholar/internal/platform/logger"
)

// main is the entry point for the trackascholar server.
// It loads configuration, sets up logging, loads the applicant registry,
// wires the services and runs the HTTP server until it is signalled to stop.
func main() {
	seedPath := flag.String("seed", "", "YAML file of sample applicants used when the data file does not exist")
	flag.Parse()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, *seedPath)
	if err != nil {
		appLogger.Error("Failed to create application", "error", err)
		log.Fatalf("Failed to create application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		appLogger.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"autosave", cfg.Storage.Autosave)

	return cfg, appLogger, nil
}
