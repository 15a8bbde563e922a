package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// startHTTPServer starts the HTTP server with graceful shutdown support.
// It serves until ctx is cancelled or the process receives SIGINT or SIGTERM.
// Returns an error if the server fails to start or encounters problems.
func (app *application) startHTTPServer(ctx context.Context, router http.Handler) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: router,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", server.Addr, err)
	}

	// Set up graceful shutdown with signal handling
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.serve(signalCtx, server, ln)
}

// serve runs server on ln until ctx is done, then drains in-flight requests
// within the configured shutdown timeout. The registry is handed to cleanup
// even when draining fails, with a deadline of its own.
func (app *application) serve(ctx context.Context, server *http.Server, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info("Starting server", "addr", ln.Addr().String())
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("Server failed", "error", err)
			return err
		}
		return nil
	})

	g.Go(func() error {
		// Wait for shutdown signal, context cancellation or a failed listener
		<-gctx.Done()
		app.logger.Info("Shutting down server...")

		timeout := app.config.Server.ShutdownTimeout
		base := context.WithoutCancel(ctx)

		shutdownCtx, cancelShutdown := context.WithTimeout(base, timeout)
		shutdownErr := server.Shutdown(shutdownCtx)
		cancelShutdown()
		if shutdownErr != nil {
			app.logger.Error("Server shutdown failed", "error", shutdownErr)
		}

		cleanupCtx, cancelCleanup := context.WithTimeout(base, timeout)
		defer cancelCleanup()
		app.cleanup(cleanupCtx)

		if shutdownErr != nil {
			return fmt.Errorf("server shutdown failed: %w", shutdownErr)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	app.logger.Info("Server shutdown completed")
	return nil
}
