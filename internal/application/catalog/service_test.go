package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/application/catalog"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/ports/inbound"
	apperrors "github.com/platewise/v1/pkg/errors"
	"github.com/platewise/v1/test/testutils"
)

func newCatalogService(t *testing.T) (inbound.RecipeService, uuid.UUID) {
	t.Helper()

	recipes := memory.NewRecipeRepository()
	pasta := testutils.NewRecipeBuilder().
		WithName("Carbonara").
		WithCuisine("italian").
		Build()
	curry := testutils.NewRecipeBuilder().
		WithName("Green Curry").
		WithCuisine("thai").
		Build()

	ctx := context.Background()
	require.NoError(t, recipes.Save(ctx, pasta))
	require.NoError(t, recipes.Save(ctx, curry))

	return catalog.NewService(recipes, zap.NewNop()), pasta.ID()
}

func TestGetRecipe(t *testing.T) {
	service, pastaID := newCatalogService(t)

	dto, err := service.GetRecipe(context.Background(), pastaID)
	require.NoError(t, err)

	assert.Equal(t, "Carbonara", dto.Name)
	assert.Equal(t, "italian", dto.Cuisine)
}

func TestGetRecipeUnknown(t *testing.T) {
	service, _ := newCatalogService(t)

	_, err := service.GetRecipe(context.Background(), uuid.New())
	assert.True(t, apperrors.Is(err, apperrors.CodeRecipeNotFound))
}

func TestListRecipesAll(t *testing.T) {
	service, _ := newCatalogService(t)

	dtos, err := service.ListRecipes(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, dtos, 2)
}

func TestListRecipesByCuisine(t *testing.T) {
	service, _ := newCatalogService(t)

	dtos, err := service.ListRecipes(context.Background(), "thai")
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "Green Curry", dtos[0].Name)
}
