package cooldown

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps expiries in a mutex-guarded map.
// Expired entries stay until RemoveExpired is called; readers compare the
// expiry themselves, so a missed sweep never extends a cooldown.
type MemoryStore struct {
	entries map[Key]time.Time
	mu      sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[Key]time.Time)}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key Key) (time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	at, ok := s.entries[key]
	if !ok {
		return time.Time{}, ErrNotFound
	}
	return at, nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, key Key, expiresAt time.Time, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = expiresAt
	return nil
}

// Delete implements Store.
func (s *MemoryStore) Delete(_ context.Context, key Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// RemoveExpired implements Store.
func (s *MemoryStore) RemoveExpired(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, at := range s.entries {
		if !at.After(now) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

var _ Store = (*MemoryStore)(nil)
