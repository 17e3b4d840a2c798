package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Option configures a logger built by New or NewWithSentry.
type Option func(*config)

type config struct {
	writer     io.Writer
	level      slog.Leveler
	extractors []ContextExtractor
	text       bool
}

func newConfig(opts ...Option) *config {
	c := &config{writer: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithWriter sets the log destination. Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.writer = w
		}
	}
}

// WithLevel sets the minimum level. A *slog.LevelVar allows changing it at
// runtime. Default: slog.LevelInfo.
func WithLevel(l slog.Leveler) Option {
	return func(c *config) {
		if l != nil {
			c.level = l
		}
	}
}

// WithText switches from JSON to the human-readable text format.
func WithText() Option {
	return func(c *config) {
		c.text = true
	}
}

// WithExtractors adds context extractors applied to every record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

func (c *config) handler() slog.Handler {
	opts := &slog.HandlerOptions{Level: c.level}
	if c.text {
		return slog.NewTextHandler(c.writer, opts)
	}
	return slog.NewJSONHandler(c.writer, opts)
}

// New creates a structured logger. Attributes attached with ContextWithAttrs
// and those returned by the configured extractors are added to every record
// logged with a context.
func New(opts ...Option) *slog.Logger {
	c := newConfig(opts...)
	return slog.New(NewLogHandlerDecorator(c.handler(), c.extractors...))
}

// ParseLevel parses "debug", "info", "warn" or "error" (any case, with an
// optional offset such as "warn+2"). Empty input is slog.LevelInfo.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, err
	}
	return l, nil
}
