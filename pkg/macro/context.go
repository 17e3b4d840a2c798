package macro

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/herald/pkg/logger"
)

const (
	// DefaultUnknownText is rendered for unresolved values.
	DefaultUnknownText = "???"

	// DefaultMaxDepth bounds nested resolution by key depth.
	DefaultMaxDepth = 8
)

// resolverConfig is shared by the resolvers and handed to extractions.
type resolverConfig struct {
	formatter Formatter
	now       func() time.Time
	logger    *slog.Logger
	unknown   string
	maxDepth  int
}

func newResolverConfig(opts ...ResolverOption) resolverConfig {
	cfg := resolverConfig{
		formatter: plainFormatter{},
		now:       time.Now,
		logger:    logger.NewNope(),
		unknown:   DefaultUnknownText,
		maxDepth:  DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ResolverOption configures the atomic and composite resolvers.
type ResolverOption func(*resolverConfig)

// WithFormatter sets the locale formatter. A nil formatter keeps the plain default.
func WithFormatter(f Formatter) ResolverOption {
	return func(c *resolverConfig) {
		if f != nil {
			c.formatter = f
		}
	}
}

// WithClock sets the time source used for relative durations.
func WithClock(now func() time.Time) ResolverOption {
	return func(c *resolverConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger for discarded values and recovered panics.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(c *resolverConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithUnknownText sets the text used inside combined values, such as a
// location with no world, for parts that are unresolved.
func WithUnknownText(s string) ResolverOption {
	return func(c *resolverConfig) {
		if s != "" {
			c.unknown = s
		}
	}
}

// WithMaxDepth bounds how many key segments nested resolution may reach.
func WithMaxDepth(n int) ResolverOption {
	return func(c *resolverConfig) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// ExtractContext is passed to capability extractions. It carries the
// formatter, the clock and the resolver chain used for nested objects.
type ExtractContext struct {
	cfg   *resolverConfig
	chain ValueResolver
}

// Formatter returns the locale formatter.
func (c *ExtractContext) Formatter() Formatter {
	return c.cfg.formatter
}

// Now returns the current time from the configured clock.
func (c *ExtractContext) Now() time.Time {
	return c.cfg.now()
}

// Unknown returns the text for unresolved parts of combined values.
func (c *ExtractContext) Unknown() string {
	return c.cfg.unknown
}

// Logger returns the resolver logger.
func (c *ExtractContext) Logger() *slog.Logger {
	return c.cfg.logger
}

// Resolve expands a related object under key through the resolver chain.
// A key that already has the configured maximum number of segments is not
// expanded, which stops cycles such as an object that is its own killer.
func (c *ExtractContext) Resolve(key Key, v any) *StringMap {
	if c.chain == nil || key.Depth() >= c.cfg.maxDepth {
		return NewStringMap()
	}
	objects := ObjectMap{}
	objects.Put(key, v)
	return c.chain.Resolve(key, objects)
}
