// Package memory provides in-memory adapters for the outbound persistence
// ports. They back single-process deployments and tests.
package memory

import (
	"context"
	"sync"

	"github.com/platewise/v1/internal/domain/preference"
	"github.com/platewise/v1/internal/ports/outbound"
)

// profileEntry pairs a profile with its per-user lock. The lock is held
// only for the duration of one read-modify-write update.
type profileEntry struct {
	mu      sync.Mutex
	profile *preference.Profile
}

// ProfileStore implements an in-memory profile store with per-user
// mutual exclusion.
type ProfileStore struct {
	mu      sync.RWMutex
	entries map[string]*profileEntry
}

// NewProfileStore creates an empty in-memory profile store.
func NewProfileStore() outbound.ProfileStore {
	return &ProfileStore{
		entries: make(map[string]*profileEntry),
	}
}

// Get returns a snapshot of the user's profile, or nil when the user has
// never interacted. Callers score against the copy without holding locks.
func (s *ProfileStore) Get(ctx context.Context, userID string) (*preference.Profile, error) {
	s.mu.RLock()
	entry, ok := s.entries[userID]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.profile.Clone(), nil
}

// Update runs fn on the user's profile under that user's lock, lazily
// creating an empty profile on first use.
func (s *ProfileStore) Update(ctx context.Context, userID string, fn func(*preference.Profile) error) error {
	s.mu.Lock()
	entry, ok := s.entries[userID]
	if !ok {
		entry = &profileEntry{profile: preference.NewProfile(userID)}
		s.entries[userID] = entry
	}
	s.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.profile)
}
