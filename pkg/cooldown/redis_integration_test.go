//go:build integration

package cooldown_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/herald/pkg/cooldown"
	"github.com/dmitrymomot/herald/pkg/redis"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, url)
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newTestRedisClient(t)
	store := cooldown.NewRedisStore(client, cooldown.WithPrefix("test-cooldown-"+uuid.NewString()))

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, cooldown.NewKey(uuid.New(), "welcome"))
		require.ErrorIs(t, err, cooldown.ErrNotFound)
	})

	t.Run("round trip with ttl", func(t *testing.T) {
		key := cooldown.NewKey(uuid.New(), "welcome")
		at := time.Now().Add(time.Minute).Truncate(time.Microsecond)

		require.NoError(t, store.Set(ctx, key, at, time.Minute))
		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, at.Equal(got))

		require.NoError(t, store.Delete(ctx, key))
		_, err = store.Get(ctx, key)
		require.ErrorIs(t, err, cooldown.ErrNotFound)
	})

	t.Run("entries expire natively", func(t *testing.T) {
		key := cooldown.NewKey(uuid.New(), "welcome")
		require.NoError(t, store.Set(ctx, key, time.Now().Add(100*time.Millisecond), 100*time.Millisecond))

		require.Eventually(t, func() bool {
			_, err := store.Get(ctx, key)
			return err != nil
		}, 2*time.Second, 20*time.Millisecond)

		n, err := store.RemoveExpired(ctx, time.Now())
		require.NoError(t, err)
		require.Equal(t, 0, n)
	})

	t.Run("map over redis", func(t *testing.T) {
		m, err := cooldown.New(cooldown.WithStore(store))
		require.NoError(t, err)

		key := cooldown.NewKey("console", "broadcast-"+uuid.NewString())
		require.True(t, m.NotCooling(ctx, key))
		require.NoError(t, m.PutExpirationTime(ctx, key, 10*time.Second))
		require.False(t, m.NotCooling(ctx, key))
	})
}
