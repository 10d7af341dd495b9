// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/preference"
	"github.com/platewise/v1/internal/domain/recipe"
)

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	name        string
	cuisine     string
	ingredients []string
	cookingTime int
	difficulty  recipe.Difficulty
	servings    int
	nutrition   recipe.Nutrition
	dietaryTags []string
	healthTags  []string
	rating      float64
}

// NewRecipeBuilder creates a new recipe builder with default values
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(time.Now().UnixNano())

	return &RecipeBuilder{
		name:        faker.Dinner(),
		cuisine:     "italian",
		ingredients: []string{"pasta", "tomato", "olive oil"},
		cookingTime: 30,
		difficulty:  recipe.DifficultyMedium,
		servings:    4,
		nutrition: recipe.Nutrition{
			Calories: 450,
			Protein:  22,
			Carbs:    55,
			Fat:      15,
			Fiber:    6,
			Sodium:   700,
		},
		rating: 4.0,
	}
}

// WithName sets the recipe name
func (rb *RecipeBuilder) WithName(name string) *RecipeBuilder {
	rb.name = name
	return rb
}

// WithCuisine sets the recipe cuisine
func (rb *RecipeBuilder) WithCuisine(cuisine string) *RecipeBuilder {
	rb.cuisine = cuisine
	return rb
}

// WithIngredients sets the ingredient list
func (rb *RecipeBuilder) WithIngredients(ingredients ...string) *RecipeBuilder {
	rb.ingredients = ingredients
	return rb
}

// WithCookingTime sets the cooking time in minutes
func (rb *RecipeBuilder) WithCookingTime(minutes int) *RecipeBuilder {
	rb.cookingTime = minutes
	return rb
}

// WithDifficulty sets the difficulty level
func (rb *RecipeBuilder) WithDifficulty(d recipe.Difficulty) *RecipeBuilder {
	rb.difficulty = d
	return rb
}

// WithServings sets the servings count
func (rb *RecipeBuilder) WithServings(servings int) *RecipeBuilder {
	rb.servings = servings
	return rb
}

// WithNutrition sets the nutrition facts
func (rb *RecipeBuilder) WithNutrition(n recipe.Nutrition) *RecipeBuilder {
	rb.nutrition = n
	return rb
}

// WithDietaryTags sets the dietary tags
func (rb *RecipeBuilder) WithDietaryTags(tags ...string) *RecipeBuilder {
	rb.dietaryTags = tags
	return rb
}

// WithHealthTags sets the health-condition tags
func (rb *RecipeBuilder) WithHealthTags(tags ...string) *RecipeBuilder {
	rb.healthTags = tags
	return rb
}

// WithRating sets the external catalog rating
func (rb *RecipeBuilder) WithRating(rating float64) *RecipeBuilder {
	rb.rating = rating
	return rb
}

// Build creates the recipe entity, panicking on invalid builder state so
// tests fail loudly.
func (rb *RecipeBuilder) Build() *recipe.Recipe {
	r, err := recipe.NewRecipe(rb.name, rb.cuisine, rb.cookingTime, rb.servings)
	if err != nil {
		panic(err)
	}
	if err := r.SetIngredients(rb.ingredients); err != nil {
		panic(err)
	}
	if err := r.SetDifficulty(rb.difficulty); err != nil {
		panic(err)
	}
	r.SetNutrition(rb.nutrition)
	r.SetDietaryTags(rb.dietaryTags)
	r.SetHealthTags(rb.healthTags)
	r.SetRating(rb.rating)
	return r
}

// NewInteraction creates a valid interaction event for tests.
func NewInteraction(userID string, recipeID uuid.UUID, kind preference.Kind, rating *int) preference.Interaction {
	event, err := preference.NewInteraction(userID, recipeID, kind, rating)
	if err != nil {
		panic(err)
	}
	return event
}

// IntPtr returns a pointer to the given int.
func IntPtr(v int) *int {
	return &v
}
