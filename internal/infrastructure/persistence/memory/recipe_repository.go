package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/ports/outbound"
)

// RecipeRepository implements an in-memory recipe catalog. Insertion
// order is preserved so ranking tie-breaks stay deterministic.
type RecipeRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*recipe.Recipe
	ordered []*recipe.Recipe
}

// NewRecipeRepository creates an empty in-memory catalog.
func NewRecipeRepository() outbound.RecipeRepository {
	return &RecipeRepository{
		byID: make(map[uuid.UUID]*recipe.Recipe),
	}
}

// Save stores a recipe. Saving an existing id replaces it in place.
func (r *RecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID()]; exists {
		for i, existing := range r.ordered {
			if existing.ID() == rec.ID() {
				r.ordered[i] = rec
				break
			}
		}
	} else {
		r.ordered = append(r.ordered, rec)
	}
	r.byID[rec.ID()] = rec
	return nil
}

// FindByID returns the recipe or nil when absent.
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

// FindAll returns the catalog in insertion order.
func (r *RecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*recipe.Recipe, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

// FindByCuisine returns recipes of one cuisine in insertion order.
func (r *RecipeRepository) FindByCuisine(ctx context.Context, cuisine string) ([]*recipe.Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*recipe.Recipe
	for _, rec := range r.ordered {
		if rec.Cuisine() == cuisine {
			out = append(out, rec)
		}
	}
	return out, nil
}
