package herald

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// Start launches background work: the cooldown sweep.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return ErrAlreadyStarted
	}
	e.started = true

	if e.sweeper != nil {
		e.sweeper.Start()
		e.logger.InfoContext(ctx, "cooldown sweeper started", slog.String("schedule", e.sweeper.Schedule()))
	}
	return nil
}

// Shutdown stops background work and runs the shutdown hooks. Every hook
// runs even if an earlier step failed; the errors are joined.
// Calling Shutdown on an engine that is not running only runs the hooks.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.mu.Lock()
	started := e.started
	e.started = false
	e.mu.Unlock()

	var errs []error

	if started && e.sweeper != nil {
		if err := e.sweeper.Stop(ctx); err != nil {
			errs = append(errs, err)
			e.logger.ErrorContext(ctx, "failed to stop cooldown sweeper", slog.Any("error", err))
		}
	}

	for _, hook := range e.hooks {
		if err := hook(ctx); err != nil {
			errs = append(errs, err)
			e.logger.ErrorContext(ctx, "shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	e.logger.InfoContext(ctx, "engine stopped")
	return nil
}

// Run starts the engine and blocks until ctx is done or the process
// receives SIGINT or SIGTERM, then shuts down within the configured
// shutdown timeout.
func (e *Engine) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := e.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.WithoutCancel(ctx), e.shutdownTimeout)
	defer shutdownCancel()

	return e.Shutdown(shutdownCtx)
}
