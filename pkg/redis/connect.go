package redis

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/herald/pkg/logger"
)

// Option configures a Redis connection.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	poolSize      int
	retryAttempts int
	retryInterval time.Duration
	ioTimeout     time.Duration
	dialTimeout   time.Duration
}

func defaultOptions() *options {
	return &options{
		logger:        logger.NewNope(),
		poolSize:      10,
		retryAttempts: 3,
		retryInterval: time.Second,
		ioTimeout:     time.Second,
		dialTimeout:   3 * time.Second,
	}
}

// WithPoolSize sets the maximum number of connections in the pool.
// Cooldown lookups are short, so a small pool is enough for most servers.
// Default: 10
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithRetry configures how often Open retries the initial ping.
// The wait grows linearly: interval, 2*interval, ...
// Default: 3 attempts, 1 second.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// WithIOTimeout sets the read and write timeout.
// Default: 1 second
func WithIOTimeout(d time.Duration) Option {
	return func(o *options) {
		o.ioTimeout = d
	}
}

// WithDialTimeout sets the timeout for establishing new connections.
// Default: 3 seconds
func WithDialTimeout(d time.Duration) Option {
	return func(o *options) {
		o.dialTimeout = d
	}
}

// WithLogger sets the logger that reports failed connection attempts.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Open creates a Redis client for a redis:// or rediss:// URL and pings it,
// retrying until the server answers or the attempts run out.
//
// Example:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"),
//	    redis.WithRetry(5, 500*time.Millisecond),
//	)
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	redisOpts.PoolSize = o.poolSize
	redisOpts.ReadTimeout = o.ioTimeout
	redisOpts.WriteTimeout = o.ioTimeout
	redisOpts.DialTimeout = o.dialTimeout

	return connect(ctx, redisOpts, o)
}

func connect(ctx context.Context, redisOpts *redis.Options, o *options) (redis.UniversalClient, error) {
	attempts := max(o.retryAttempts, 1)

	var lastErr error
	for i := range attempts {
		client := redis.NewClient(redisOpts)

		lastErr = client.Ping(ctx).Err()
		if lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		o.logger.WarnContext(ctx, "redis ping failed",
			slog.Int("attempt", i+1),
			slog.Int("attempts", attempts),
			slog.Any("error", lastErr),
		)

		if i == attempts-1 {
			break
		}
		if waitErr := wait(ctx, time.Duration(i+1)*o.retryInterval); waitErr != nil {
			return nil, errors.Join(ErrConnectionFailed, waitErr)
		}
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

func wait(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Ping reports whether client answers. A nil client fails.
func Ping(ctx context.Context, client redis.UniversalClient) error {
	if client == nil {
		return ErrPingFailed
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Join(ErrPingFailed, err)
	}
	return nil
}
