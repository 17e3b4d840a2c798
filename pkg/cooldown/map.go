package cooldown

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/herald/pkg/logger"
)

// Map gates repeated deliveries of the same message to the same recipient.
// It never blocks a delivery on its own: callers check NotCooling, send, and
// then record the new window with PutExpirationTime.
type Map struct {
	store  Store
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Map.
type Option func(*Map) error

// WithStore sets the backing store. Default: a new MemoryStore.
func WithStore(s Store) Option {
	return func(m *Map) error {
		if s == nil {
			return ErrNilStore
		}
		m.store = s
		return nil
	}
}

// WithClock sets the time source. Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Map) error {
		if now != nil {
			m.now = now
		}
		return nil
	}
}

// WithLogger sets the logger used for store failures.
func WithLogger(l *slog.Logger) Option {
	return func(m *Map) error {
		if l != nil {
			m.logger = l
		}
		return nil
	}
}

// New creates a Map.
func New(opts ...Option) (*Map, error) {
	m := &Map{
		store:  NewMemoryStore(),
		now:    time.Now,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// NotCooling reports whether a message may be delivered for key: there is no
// entry, or its expiry has passed. A failing store is logged and treated as
// not cooling, so an outage never silences messages.
func (m *Map) NotCooling(ctx context.Context, key Key) bool {
	_, cooling := m.Expiration(ctx, key)
	return !cooling
}

// Expiration returns the end of the active window for key.
// ok is false when key is not cooling.
func (m *Map) Expiration(ctx context.Context, key Key) (expiresAt time.Time, ok bool) {
	at, err := m.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			m.logger.WarnContext(ctx, "failed to read cooldown",
				slog.String("key", key.String()),
				slog.Any("error", err),
			)
		}
		return time.Time{}, false
	}
	if !at.After(m.now()) {
		return time.Time{}, false
	}
	return at, true
}

// PutExpirationTime records a window of delay starting now, replacing any
// previous one. It never gates; a non-positive delay records nothing.
func (m *Map) PutExpirationTime(ctx context.Context, key Key, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	return m.store.Set(ctx, key, m.now().Add(delay), delay)
}

// Reset ends the window for key immediately.
func (m *Map) Reset(ctx context.Context, key Key) error {
	return m.store.Delete(ctx, key)
}

// RemoveExpired sweeps entries whose windows have closed.
// Correctness never depends on sweeping; it only bounds memory.
func (m *Map) RemoveExpired(ctx context.Context) (int, error) {
	return m.store.RemoveExpired(ctx, m.now())
}
