package cooldown

import (
	"context"
	"time"
)

// Store persists cooldown expiries.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the expiry recorded for key or ErrNotFound.
	// Stores may return entries that have already expired.
	Get(ctx context.Context, key Key) (time.Time, error)

	// Set records expiresAt for key, overwriting any previous entry.
	// ttl is expiresAt minus the caller's current time and is always positive;
	// stores with native expiry use it instead of expiresAt.
	Set(ctx context.Context, key Key, expiresAt time.Time, ttl time.Duration) error

	// Delete removes the entry for key. Missing keys are not an error.
	Delete(ctx context.Context, key Key) error

	// RemoveExpired drops entries whose expiry is not after now and returns
	// how many were removed.
	RemoveExpired(ctx context.Context, now time.Time) (int, error)
}
