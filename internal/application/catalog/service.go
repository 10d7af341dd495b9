// Package catalog provides read access to the recipe catalog.
package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/application/recommendation"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// Service implements the catalog read use cases.
type Service struct {
	recipes outbound.RecipeRepository
	logger  *zap.Logger
}

// NewService creates a new catalog service.
func NewService(recipes outbound.RecipeRepository, logger *zap.Logger) inbound.RecipeService {
	return &Service{
		recipes: recipes,
		logger:  logger.Named("catalog-service"),
	}
}

// GetRecipe retrieves one recipe by id.
func (s *Service) GetRecipe(ctx context.Context, id uuid.UUID) (*inbound.RecipeDTO, error) {
	r, err := s.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if r == nil {
		return nil, errors.NewRecipeNotFoundError(id.String())
	}

	dto := recommendation.RecipeToDTO(r)
	return &dto, nil
}

// ListRecipes returns the catalog, optionally filtered by cuisine.
func (s *Service) ListRecipes(ctx context.Context, cuisine string) ([]inbound.RecipeDTO, error) {
	var (
		recipes []*recipe.Recipe
		err     error
	)
	if cuisine == "" {
		recipes, err = s.recipes.FindAll(ctx)
	} else {
		recipes, err = s.recipes.FindByCuisine(ctx, cuisine)
	}
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, len(recipes))
	for i, r := range recipes {
		dtos[i] = recommendation.RecipeToDTO(r)
	}
	return dtos, nil
}
