package cooldown

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces cooldown keys in Redis.
const DefaultRedisPrefix = "herald:cooldown"

// RedisStore keeps expiries in Redis. Each entry carries a native TTL, so
// Redis drops it when the window closes and RemoveExpired has nothing to do.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithPrefix sets the key prefix. Keys are stored as
// "{prefix}:{recipient}:{message}".
// Default: DefaultRedisPrefix.
func WithPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a store over client. The client lifecycle stays with
// the caller.
//
// Example:
//
//	client, err := redis.Open(ctx, os.Getenv("REDIS_URL"))
//	store := cooldown.NewRedisStore(client, cooldown.WithPrefix("lobby"))
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: DefaultRedisPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key Key) (time.Time, error) {
	raw, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, err
	}

	nanos, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedEntry, raw)
	}
	return time.Unix(0, nanos), nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key Key, expiresAt time.Time, ttl time.Duration) error {
	if ttl <= 0 {
		return s.Delete(ctx, key)
	}
	value := strconv.FormatInt(expiresAt.UnixNano(), 10)
	return s.client.Set(ctx, s.redisKey(key), value, ttl).Err()
}

// Delete implements Store.
func (s *RedisStore) Delete(ctx context.Context, key Key) error {
	return s.client.Del(ctx, s.redisKey(key)).Err()
}

// RemoveExpired is a no-op: Redis expires entries itself.
func (s *RedisStore) RemoveExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}

func (s *RedisStore) redisKey(key Key) string {
	if s.prefix == "" {
		return key.String()
	}
	return s.prefix + ":" + key.String()
}

var _ Store = (*RedisStore)(nil)
