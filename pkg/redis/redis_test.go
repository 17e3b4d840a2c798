package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpen_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty URL", func(t *testing.T) {
		t.Parallel()

		client, err := Open(ctx, "")
		require.Nil(t, client)
		require.ErrorIs(t, err, ErrEmptyConnectionURL)
	})

	tests := []struct {
		name string
		url  string
	}{
		{name: "http scheme", url: "http://localhost:6379"},
		{name: "no scheme", url: "localhost:6379"},
		{name: "invalid port", url: "redis://localhost:notaport"},
		{name: "invalid database", url: "redis://localhost:6379/notanumber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, err := Open(ctx, tt.url)
			require.Nil(t, client)
			require.ErrorIs(t, err, ErrFailedToParseURL)
		})
	}
}

func TestOpen_Unreachable(t *testing.T) {
	t.Parallel()

	start := time.Now()
	client, err := Open(context.Background(), "redis://127.0.0.1:1/0",
		WithRetry(2, 10*time.Millisecond),
		WithDialTimeout(100*time.Millisecond),
	)
	require.Nil(t, client)
	require.ErrorIs(t, err, ErrConnectionFailed)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestOpen_CancelledWhileWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := Open(ctx, "redis://127.0.0.1:1/0", WithRetry(3, 10*time.Second))
	require.ErrorIs(t, err, ErrConnectionFailed)
}

func TestPing_NilClient(t *testing.T) {
	t.Parallel()

	err := Ping(context.Background(), nil)
	require.ErrorIs(t, err, ErrPingFailed)
}

func TestWait(t *testing.T) {
	t.Parallel()

	t.Run("cancelled context returns immediately", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		start := time.Now()
		err := wait(ctx, 10*time.Second)
		require.True(t, errors.Is(err, context.Canceled))
		require.Less(t, time.Since(start), time.Second)
	})

	t.Run("timer completes", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		require.NoError(t, wait(context.Background(), 20*time.Millisecond))
		require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})
}

func TestOptions(t *testing.T) {
	t.Parallel()

	o := defaultOptions()
	require.Equal(t, 10, o.poolSize)
	require.Equal(t, 3, o.retryAttempts)
	require.Equal(t, time.Second, o.retryInterval)

	for _, opt := range []Option{
		WithPoolSize(4),
		WithPoolSize(-1),
		WithRetry(5, time.Millisecond),
		WithIOTimeout(2 * time.Second),
		WithDialTimeout(time.Second),
		WithLogger(nil),
	} {
		opt(o)
	}
	require.Equal(t, 4, o.poolSize)
	require.Equal(t, 5, o.retryAttempts)
	require.Equal(t, time.Millisecond, o.retryInterval)
	require.Equal(t, 2*time.Second, o.ioTimeout)
	require.Equal(t, time.Second, o.dialTimeout)
	require.NotNil(t, o.logger)
}
