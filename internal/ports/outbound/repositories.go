// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/preference"
	"github.com/platewise/v1/internal/domain/recipe"
)

// RecipeRepository defines the interface for recipe catalog access.
type RecipeRepository interface {
	Save(ctx context.Context, r *recipe.Recipe) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindAll(ctx context.Context) ([]*recipe.Recipe, error)
	FindByCuisine(ctx context.Context, cuisine string) ([]*recipe.Recipe, error)
}

// ProfileStore holds per-user preference profiles. Get returns nil when no
// profile exists (unknown users are not an error). Update runs fn on the
// user's profile under that user's lock, creating an empty profile first
// when none exists.
type ProfileStore interface {
	Get(ctx context.Context, userID string) (*preference.Profile, error)
	Update(ctx context.Context, userID string, fn func(*preference.Profile) error) error
}

// InteractionStore persists the append-only interaction event log.
// FindAll returns every event oldest first, the order profile replay
// depends on.
type InteractionStore interface {
	Append(ctx context.Context, event preference.Interaction) error
	FindAll(ctx context.Context) ([]preference.Interaction, error)
	FindByUser(ctx context.Context, userID string, limit int) ([]preference.Interaction, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}

// CacheRepository defines the interface for caching operations.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CaptionService describes an image as text. The captioning model is an
// opaque external dependency; only its text output enters the domain.
type CaptionService interface {
	Describe(ctx context.Context, image []byte) (string, error)
}
