package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/trackascholar/internal/config"
	"github.com/phrazzld/trackascholar/internal/domain"
	"github.com/phrazzld/trackascholar/internal/events"
	"github.com/phrazzld/trackascholar/internal/platform/jsonstore"
	"github.com/phrazzld/trackascholar/internal/platform/metrics"
	"github.com/phrazzld/trackascholar/internal/redact"
	"github.com/phrazzld/trackascholar/internal/service"
	"github.com/phrazzld/trackascholar/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	storage *jsonstore.FileStorage
	metrics *metrics.Metrics

	// Service interfaces
	applicantService service.ApplicantService

	// Event system
	eventEmitter *events.InMemoryEventEmitter
}

// newApplication creates a new application instance with all dependencies initialized.
// The registry is read from the configured data file; if the file does not
// exist it is seeded from seedPath, when given.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	seedPath string,
) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config:  cfg,
		logger:  logger,
		storage: jsonstore.NewFileStorage(cfg.Storage.DataFile, logger),
		metrics: metrics.New(),
	}

	registry, err := app.loadRegistry(ctx, seedPath)
	if err != nil {
		return nil, err
	}

	// Initialize event emitter
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)
	if cfg.Storage.Autosave {
		writer := &observedWriter{writer: app.storage, metrics: app.metrics}
		app.eventEmitter.RegisterHandler(jsonstore.NewAutosaveHandler(writer, logger))
	}
	app.eventEmitter.RegisterHandler(app.metrics)
	app.metrics.SetApplicants(registry.Len())

	app.applicantService, err = service.NewApplicantService(
		registry,
		jsonstore.Serialize,
		app.eventEmitter,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create applicant service: %w", err)
	}

	logger.Info("Application initialized successfully", "applicant_count", registry.Len())
	return app, nil
}

// loadRegistry reads the data file. A missing file yields the seed data, or
// an empty registry without a seed. A data file whose content does not load
// is reported and replaced by an empty registry.
func (app *application) loadRegistry(ctx context.Context, seedPath string) (*store.Registry, error) {
	registry, err := app.storage.ReadRegistry(ctx)
	switch {
	case err == nil:
		return registry, nil

	case errors.Is(err, jsonstore.ErrNoData):
		if seedPath == "" {
			app.logger.Info("Data file not found, starting with an empty registry")
			return store.NewRegistry(), nil
		}
		seeded, err := LoadSeed(seedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed data: %w", err)
		}
		app.logger.Info("Data file not found, starting with seed data", "applicant_count", seeded.Len())
		return seeded, nil

	case errors.Is(err, jsonstore.ErrMalformedDocument),
		errors.Is(err, jsonstore.ErrMissingField),
		errors.Is(err, domain.ErrInvalidField),
		errors.Is(err, store.ErrDuplicate):
		app.logger.Warn("Data file is not in the correct format, starting with an empty registry",
			"error", redact.Error(err))
		return store.NewRegistry(), nil

	default:
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// observedWriter times every write to the data file.
type observedWriter struct {
	writer  jsonstore.DocumentWriter
	metrics *metrics.Metrics
}

func (w *observedWriter) WriteDocument(ctx context.Context, data []byte) error {
	defer w.metrics.ObserveSave(time.Now())
	return w.writer.WriteDocument(ctx, data)
}

// cleanup writes the final registry state when autosave is off.
func (app *application) cleanup(ctx context.Context) {
	if !app.config.Storage.Autosave {
		start := time.Now()
		err := app.storage.SaveRegistry(ctx, app.applicantService.Applicants(ctx))
		app.metrics.ObserveSave(start)
		if err != nil {
			app.logger.Error("Failed to save registry on shutdown", "error", redact.Error(err))
		}
	}

	app.logger.Info("Application shutdown completed")
}
