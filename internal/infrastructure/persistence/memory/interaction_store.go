package memory

import (
	"context"
	"sync"

	"github.com/platewise/v1/internal/domain/preference"
	"github.com/platewise/v1/internal/ports/outbound"
)

// InteractionStore implements an in-memory append-only event log.
type InteractionStore struct {
	mu     sync.RWMutex
	events []preference.Interaction
}

// NewInteractionStore creates an empty in-memory event log.
func NewInteractionStore() outbound.InteractionStore {
	return &InteractionStore{}
}

// Append records an event. Events are never mutated or deleted.
func (s *InteractionStore) Append(ctx context.Context, event preference.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// FindAll returns every event, oldest first.
func (s *InteractionStore) FindAll(ctx context.Context) ([]preference.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]preference.Interaction, len(s.events))
	copy(out, s.events)
	return out, nil
}

// FindByUser returns the user's most recent events, newest first.
func (s *InteractionStore) FindByUser(ctx context.Context, userID string, limit int) ([]preference.Interaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []preference.Interaction
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].UserID != userID {
			continue
		}
		out = append(out, s.events[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// CountByUser returns how many events the user has logged.
func (s *InteractionStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, e := range s.events {
		if e.UserID == userID {
			count++
		}
	}
	return count, nil
}
