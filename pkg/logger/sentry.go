package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration settings.
type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
	// MinLevel selects what is stored as Sentry logs: slog.LevelError keeps
	// only errors, anything lower keeps warnings and errors.
	MinLevel slog.Level
}

// NewWithSentry creates a logger that writes locally and forwards warnings
// and errors to Sentry. Errors also create Sentry issues, so a failing
// sender or cooldown store surfaces there.
// Without a DSN, or when the SDK fails to initialize, it behaves like New.
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	c := newConfig(opts...)
	local := c.handler()

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(local, c.extractors...))
	}

	environment := cfg.Environment
	if environment == "" {
		environment = "production"
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(local, c.extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	remote := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newMultiHandler(local, remote), c.extractors...))
}
