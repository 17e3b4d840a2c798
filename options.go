package herald

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/herald/pkg/cooldown"
	"github.com/dmitrymomot/herald/pkg/macro"
	"github.com/dmitrymomot/herald/pkg/message"
)

// Option configures the engine.
type Option func(*config)

type config struct {
	logger          *slog.Logger
	formatter       macro.Formatter
	store           cooldown.Store
	now             func() time.Time
	adapters        []macro.RegistryOption
	senders         []message.Sender
	resolvers       []macro.ValueResolver
	shutdownHooks   []func(ctx context.Context) error
	left, right     string
	unknown         string
	sweepSchedule   string
	maxDepth        int
	shutdownTimeout time.Duration
	sweeperDisabled bool
}

// WithLogger sets the engine logger. It is shared by the resolvers, the
// pipeline, the cooldown map and the sweeper.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFormatter sets how numbers, durations and instants are rendered.
// Pass a *locale.Live to switch locales at runtime.
// Defaults to locale.Default().
func WithFormatter(f macro.Formatter) Option {
	return func(c *config) {
		if f != nil {
			c.formatter = f
		}
	}
}

// WithAdapter registers an adapter factory for a capability, after the
// built-in ones. Registering a built-in capability replaces it.
func WithAdapter(capability macro.Capability, factory macro.Factory) Option {
	return func(c *config) {
		c.adapters = append(c.adapters, macro.WithAdapter(capability, factory))
	}
}

// WithSenders adds delivery channels. They run in the order given.
// Defaults to chat and title senders.
func WithSenders(senders ...message.Sender) Option {
	return func(c *config) {
		c.senders = append(c.senders, senders...)
	}
}

// WithCooldownStore sets where cooldown windows are kept.
// Defaults to an in-memory store.
func WithCooldownStore(s cooldown.Store) Option {
	return func(c *config) {
		if s != nil {
			c.store = s
		}
	}
}

// WithSweepSchedule sets the cron schedule of the expired-cooldown sweep.
// Defaults to cooldown.DefaultSweepSchedule.
func WithSweepSchedule(spec string) Option {
	return func(c *config) {
		if spec != "" {
			c.sweepSchedule = spec
		}
	}
}

// WithoutSweeper disables the background sweep, e.g. with a store that
// expires entries itself.
func WithoutSweeper() Option {
	return func(c *config) {
		c.sweeperDisabled = true
	}
}

// WithDelimiters sets the placeholder delimiters. Defaults to "{" and "}".
func WithDelimiters(left, right string) Option {
	return func(c *config) {
		c.left, c.right = left, right
	}
}

// WithUnknownText sets the text rendered for values that cannot be
// resolved. Defaults to macro.DefaultUnknownText.
func WithUnknownText(s string) Option {
	return func(c *config) {
		if s != "" {
			c.unknown = s
		}
	}
}

// WithClock sets the time source for cooldowns and relative durations.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithResolvers adds resolvers that run before the built-in ones, so they
// can take over keys the defaults would produce.
func WithResolvers(resolvers ...macro.ValueResolver) Option {
	return func(c *config) {
		c.resolvers = append(c.resolvers, resolvers...)
	}
}

// WithMaxDepth bounds how many key segments nested objects may expand to.
// Defaults to macro.DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithShutdownTimeout bounds Shutdown when Run stops the engine.
// Defaults to 10 seconds.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// WithShutdownHook registers a function run by Shutdown, e.g. closing the
// Redis client behind a cooldown store. Hooks run in registration order.
func WithShutdownHook(fn func(ctx context.Context) error) Option {
	return func(c *config) {
		if fn != nil {
			c.shutdownHooks = append(c.shutdownHooks, fn)
		}
	}
}
