package cooldown

import "errors"

// Sentinel errors for cooldown operations.
var (
	// ErrNotFound is returned by a Store when a key has no live entry.
	ErrNotFound = errors.New("cooldown: entry not found")

	// ErrNilStore is returned when a nil Store is configured.
	ErrNilStore = errors.New("cooldown: store cannot be nil")

	// ErrNilMap is returned when a Sweeper is created without a Map.
	ErrNilMap = errors.New("cooldown: map cannot be nil")

	// ErrInvalidSchedule is returned when the sweep schedule cannot be parsed.
	ErrInvalidSchedule = errors.New("cooldown: invalid sweep schedule")

	// ErrMalformedEntry is returned when a stored expiry cannot be decoded.
	ErrMalformedEntry = errors.New("cooldown: malformed entry")
)
