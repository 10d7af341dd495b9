package vision_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/domain/vision"
	"github.com/platewise/v1/test/testutils"
)

func TestExtractIngredientsWordBoundaries(t *testing.T) {
	extractor := vision.NewExtractor()

	// "cornice" and "ricefield" must not match "corn" or "rice".
	found := extractor.ExtractIngredients("a cornice above a ricefield painting with corn and rice below")

	assert.Contains(t, found, "corn")
	assert.Contains(t, found, "rice")
	assert.Len(t, found, 2)
}

func TestExtractIngredientsDeduplicates(t *testing.T) {
	extractor := vision.NewExtractor()

	found := extractor.ExtractIngredients("Chicken, more chicken, tomato and basil over chicken")

	assert.Equal(t, []string{"tomato", "chicken", "basil"}, found)
}

func TestCategorizeFirstCategoryWins(t *testing.T) {
	extractor := vision.NewExtractor()

	categorized := extractor.Categorize([]string{"garlic", "cheese", "basil", "salmon"})

	// garlic is listed under vegetables before herbs_spices; cheese under
	// proteins before dairy.
	assert.Contains(t, categorized[vision.CategoryVegetables], "garlic")
	assert.Contains(t, categorized[vision.CategoryProteins], "cheese")
	assert.Contains(t, categorized[vision.CategoryProteins], "salmon")
	assert.Contains(t, categorized[vision.CategoryHerbsSpices], "basil")
	assert.NotContains(t, categorized[vision.CategoryDairy], "cheese")
}

func TestSuggestMethodsSorted(t *testing.T) {
	extractor := vision.NewExtractor()

	methods := extractor.SuggestMethods([]string{"chicken", "potato", "carrot"})

	assert.Equal(t, []string{"Baking", "Grilling", "Roasting", "Soup", "Stir Fry"}, methods)
}

func TestEstimateServings(t *testing.T) {
	extractor := vision.NewExtractor()

	few := []string{"a", "b", "c"}
	assert.Equal(t, 1, extractor.EstimateServings(few, "a small plate"))

	six := []string{"a", "b", "c", "d", "e", "f"}
	assert.Equal(t, 2, extractor.EstimateServings(six, "a plate"))
	assert.Equal(t, 3, extractor.EstimateServings(six, "a plate with many items"))

	thirteen := make([]string, 13)
	for i := range thirteen {
		thirteen[i] = string(rune('a' + i))
	}
	assert.Equal(t, 5, extractor.EstimateServings(thirteen, "several dishes"))
}

func TestMatchRecipesThresholdAndOrder(t *testing.T) {
	extractor := vision.NewExtractor()

	strong := testutils.NewRecipeBuilder().
		WithName("strong").
		WithIngredients("chicken", "tomato", "basil", "garlic").
		Build()
	weak := testutils.NewRecipeBuilder().
		WithName("weak").
		WithIngredients("chicken", "rice", "peas", "corn").
		Build()
	none := testutils.NewRecipeBuilder().
		WithName("none").
		WithIngredients("beef", "onion", "cumin", "paprika", "oats").
		Build()

	identified := []string{"chicken", "tomato", "basil"}
	matches := extractor.MatchRecipes(identified, []*recipe.Recipe{strong, weak, none})

	require.Len(t, matches, 2)
	assert.Equal(t, "strong", matches[0].Recipe.Name())
	assert.Equal(t, 75.0, matches[0].MatchPercent)
	assert.Equal(t, []string{"chicken", "tomato", "basil"}, matches[0].Overlap)
	assert.Equal(t, "weak", matches[1].Recipe.Name())
	assert.Equal(t, 25.0, matches[1].MatchPercent)
}

func TestMatchRecipesExactThresholdExcluded(t *testing.T) {
	extractor := vision.NewExtractor()

	// 1 of 5 ingredients is exactly 20%, which must not qualify.
	r := testutils.NewRecipeBuilder().
		WithIngredients("chicken", "rice", "peas", "corn", "onion").
		Build()

	matches := extractor.MatchRecipes([]string{"chicken"}, []*recipe.Recipe{r})
	assert.Empty(t, matches)
}
