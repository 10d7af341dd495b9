package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/ports/outbound"
)

// RecipeRepository implements the recipe catalog on a relational database.
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new GORM-backed recipe repository.
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Save persists a recipe, replacing any existing row with the same id.
func (r *RecipeRepository) Save(ctx context.Context, rec *recipe.Recipe) error {
	model := toRecipeModel(rec)
	return r.db.WithContext(ctx).Save(&model).Error
}

// FindByID returns the recipe or nil when no row matches.
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toRecipeEntity(model), nil
}

// FindAll returns the full catalog ordered by creation time.
func (r *RecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return toRecipeEntities(models), nil
}

// FindByCuisine returns recipes of one cuisine ordered by creation time.
func (r *RecipeRepository) FindByCuisine(ctx context.Context, cuisine string) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Where("cuisine = ?", cuisine).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return toRecipeEntities(models), nil
}

func toRecipeEntities(models []RecipeModel) []*recipe.Recipe {
	out := make([]*recipe.Recipe, len(models))
	for i, m := range models {
		out[i] = toRecipeEntity(m)
	}
	return out
}
