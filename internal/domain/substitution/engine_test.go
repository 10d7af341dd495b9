package substitution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/v1/internal/domain/substitution"
)

func TestFindDefaultAlternatives(t *testing.T) {
	engine := substitution.NewEngine()

	s := engine.Find("milk", substitution.Query{})

	assert.Equal(t, "milk", s.Original)
	assert.Equal(t, 1.0, s.Ratio)
	assert.Contains(t, s.Alternatives, "almond milk")
	assert.LessOrEqual(t, len(s.Alternatives), 5)
}

func TestFindMatchesPartialNames(t *testing.T) {
	engine := substitution.NewEngine()

	s := engine.Find("Fresh Milk", substitution.Query{})
	assert.Contains(t, s.Alternatives, "oat milk")
}

func TestFindVeganVariantWins(t *testing.T) {
	engine := substitution.NewEngine()

	s := engine.Find("butter", substitution.Query{
		DietaryRestrictions: []string{"vegan"},
	})

	assert.Contains(t, s.Alternatives, "vegan butter")
	assert.Contains(t, s.Notes, "Suitable for vegan diet")
	assert.Equal(t, 0.75, s.Ratio)
}

func TestFindNormalizesRestrictionKeys(t *testing.T) {
	engine := substitution.NewEngine()

	// "Gluten-Free" must hit the gluten_free variant.
	s := engine.Find("pasta", substitution.Query{
		DietaryRestrictions: []string{"Gluten-Free"},
	})

	assert.Contains(t, s.Alternatives, "rice pasta")
	assert.Contains(t, s.Notes, "Suitable for gluten free diet")
}

func TestFindAmbiguousNameResolvesDeterministically(t *testing.T) {
	engine := substitution.NewEngine()

	// "buttermilk" contains both "butter" and "milk"; the longer, more
	// specific key must win on every call.
	for i := 0; i < 200; i++ {
		s := engine.Find("buttermilk", substitution.Query{})
		require.Equal(t, 0.75, s.Ratio)
		require.Contains(t, s.Alternatives, "olive oil")
	}
}

func TestFindBudgetOptions(t *testing.T) {
	engine := substitution.NewEngine()

	s := engine.Find("salmon", substitution.Query{BudgetConscious: true})

	assert.Contains(t, s.Alternatives, "canned tuna")
	assert.Contains(t, s.Notes, "Budget-friendly options included")
}

func TestFindCombinedVariantsDedupe(t *testing.T) {
	engine := substitution.NewEngine()

	s := engine.Find("chicken breast", substitution.Query{
		DietaryRestrictions: []string{"vegan"},
		HealthGoals:         []string{"low_fat"},
	})

	seen := make(map[string]int)
	for _, alt := range s.Alternatives {
		seen[alt]++
	}
	for alt, count := range seen {
		assert.Equal(t, 1, count, "alternative %q appears more than once", alt)
	}
	assert.LessOrEqual(t, len(s.Alternatives), 5)
}

func TestFindUnknownIngredientFallsBackToCategory(t *testing.T) {
	engine := substitution.NewEngine()

	s := engine.Find("swordfish fillet", substitution.Query{})

	assert.Equal(t, []string{"tofu", "tempeh", "legumes"}, s.Alternatives)
	require.Len(t, s.Notes, 1)
	assert.Equal(t, "Generic protein substitutions suggested", s.Notes[0])
}

func TestFindUnknownUncategorizedIngredient(t *testing.T) {
	engine := substitution.NewEngine()

	s := engine.Find("xanthan gum", substitution.Query{})

	assert.Equal(t, []string{"consult recipe notes"}, s.Alternatives)
	assert.Equal(t, "Nutritional values may vary significantly", s.NutritionNotes)
}

func TestBatchResolvesAllIngredients(t *testing.T) {
	engine := substitution.NewEngine()

	results := engine.Batch([]string{"milk", "sugar"}, substitution.Query{})

	require.Len(t, results, 2)
	assert.Equal(t, 0.75, results["sugar"].Ratio)
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, substitution.CategoryProtein, substitution.Categorize("chicken thigh"))
	assert.Equal(t, substitution.CategoryProtein, substitution.Categorize("chicken and peppers"))
	assert.Equal(t, substitution.CategoryGrain, substitution.Categorize("basmati rice"))
	assert.Equal(t, substitution.CategoryHerb, substitution.Categorize("fresh basil"))
	assert.Equal(t, substitution.CategoryOther, substitution.Categorize("xanthan gum"))
}
