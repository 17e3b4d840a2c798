// Package logger builds structured slog loggers for herald services.
//
// New returns a JSON (or text) logger whose handler is wrapped in a
// LogHandlerDecorator. The decorator adds two kinds of attributes to every
// record logged with a context: attributes attached with ContextWithAttrs,
// and the results of ContextExtractor functions.
//
//	log := logger.New(logger.WithLevel(slog.LevelDebug))
//
//	ctx = logger.ContextWithAttrs(ctx, slog.String("message", "WELCOME"))
//	log.InfoContext(ctx, "message sent")
//	// {"level":"INFO","msg":"message sent","message":"WELCOME"}
//
// The message pipeline attaches the message key and recipient identity this
// way, so every line logged while handling one delivery can be correlated.
//
// # Sentry
//
// NewWithSentry additionally forwards warnings and errors to Sentry and
// falls back to local logging when no DSN is configured:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "staging",
//	})
//
// # Silence
//
// NewNope returns a logger that discards everything. Packages use the same
// construction as their default when no logger is configured.
package logger
