package main

import (
	"context"
	"fmt"

	"github.com/vyrodovalexey/avanegotiate/internal/observability"
)

// run serves until ctx is done or the server fails, then shuts down
// gracefully within the configured timeout.
func run(ctx context.Context, app *application, logger observability.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Start(ctx)
	}()

	var (
		serveErr error
		served   bool
	)
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case serveErr = <-errCh:
		served = true
		if serveErr != nil {
			logger.Error("server failed", observability.Error(serveErr))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		app.config.Server.ShutdownTimeout.Duration())
	defer cancel()

	if err := app.server.Stop(shutdownCtx); err != nil {
		logger.Error("failed to stop server gracefully", observability.Error(err))
	}

	if !served {
		select {
		case serveErr = <-errCh:
		case <-shutdownCtx.Done():
		}
	}

	if err := app.tracer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown tracer", observability.Error(err))
	}

	logger.Info("negotiator stopped")

	if serveErr != nil {
		return fmt.Errorf("serve: %w", serveErr)
	}
	return nil
}
