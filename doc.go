// Package herald renders templated messages from context objects and
// delivers them with per-recipient cooldowns.
//
// Templates contain dotted placeholders such as {PLAYER.LOCATION.X}. The
// objects put into a render are described by small capability interfaces
// (macro.DisplayNameable, macro.Locatable, ...) or bound to them with
// adapters, and every capability derives its own set of keys.
//
// # Quick Start
//
//	repo, err := message.NewMapRepository(
//	    message.WithRecords(message.Record{
//	        Key:         message.MustRecordKey("WELCOME"),
//	        Body:        "Hello {RECIPIENT.DISPLAY_NAME}!",
//	        RepeatDelay: 10 * time.Second,
//	        Enabled:     true,
//	    }),
//	)
//	if err != nil {
//	    return err
//	}
//
//	e, err := herald.New(repo, herald.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//
//	e.Send(ctx, player, message.MustRecordKey("WELCOME"), nil)
//
// Rendering never fails. Unknown placeholders are left as written, values
// that cannot be formatted render as "???", and missing records are
// treated as disabled.
//
// # Lifecycle
//
// Start launches the cron-scheduled sweep of expired cooldowns and Shutdown
// stops it and runs hooks registered with WithShutdownHook. Run does both
// around SIGINT/SIGTERM handling.
//
// # Packages
//
//   - pkg/macro: keys, matching, capabilities, adapters, resolvers, replacer
//   - pkg/message: records, repositories, senders, pipeline
//   - pkg/cooldown: cooldown keys, map, memory and Redis stores, sweeper
//   - pkg/locale: number, duration and date formatting per language
//   - pkg/logger: slog setup with context attributes and Sentry
//   - pkg/redis: go-redis connection helper
package herald
