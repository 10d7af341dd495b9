// Package recipe contains the core domain model for catalog recipes.
// Records are built once at catalog load time and treated as read-only
// input to scoring and ranking.
package recipe

import (
	"github.com/google/uuid"
)

// Recipe represents a dish in the catalog.
type Recipe struct {
	id           uuid.UUID
	name         string
	cuisine      string
	ingredients  []string
	instructions []string
	cookingTime  int // minutes
	difficulty   Difficulty
	servings     int
	nutrition    Nutrition
	dietaryTags  []string
	healthTags   []string
	rating       float64 // external catalog rating, used as cold-start fallback
}

// NewRecipe creates a new Recipe with validation.
func NewRecipe(name, cuisine string, cookingTime, servings int) (*Recipe, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if cookingTime < 0 {
		return nil, ErrInvalidCookingTime
	}
	if servings <= 0 {
		return nil, ErrInvalidServings
	}

	return &Recipe{
		id:          uuid.New(),
		name:        name,
		cuisine:     cuisine,
		cookingTime: cookingTime,
		difficulty:  DifficultyEasy,
		servings:    servings,
	}, nil
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Name returns the recipe's name
func (r *Recipe) Name() string {
	return r.name
}

// Cuisine returns the recipe's cuisine
func (r *Recipe) Cuisine() string {
	return r.cuisine
}

// Ingredients returns the ordered ingredient list
func (r *Recipe) Ingredients() []string {
	return r.ingredients
}

// Instructions returns the ordered instruction steps
func (r *Recipe) Instructions() []string {
	return r.instructions
}

// CookingTime returns the cooking time in minutes
func (r *Recipe) CookingTime() int {
	return r.cookingTime
}

// Difficulty returns the difficulty level
func (r *Recipe) Difficulty() Difficulty {
	return r.difficulty
}

// Servings returns the servings count
func (r *Recipe) Servings() int {
	return r.servings
}

// Nutrition returns the nutrition facts
func (r *Recipe) Nutrition() Nutrition {
	return r.nutrition
}

// DietaryTags returns the dietary tags
func (r *Recipe) DietaryTags() []string {
	return r.dietaryTags
}

// HealthTags returns the health-condition tags
func (r *Recipe) HealthTags() []string {
	return r.healthTags
}

// Rating returns the external catalog rating
func (r *Recipe) Rating() float64 {
	return r.rating
}

// IsSpicy reports whether the dietary tags mark the recipe as spicy.
func (r *Recipe) IsSpicy() bool {
	for _, tag := range r.dietaryTags {
		if tag == "spicy" {
			return true
		}
	}
	return false
}

// SetIngredients replaces the ingredient list
func (r *Recipe) SetIngredients(ingredients []string) error {
	for _, ing := range ingredients {
		if ing == "" {
			return ErrEmptyIngredient
		}
	}
	r.ingredients = ingredients
	return nil
}

// SetInstructions replaces the instruction steps
func (r *Recipe) SetInstructions(steps []string) {
	r.instructions = steps
}

// SetDifficulty sets the difficulty level
func (r *Recipe) SetDifficulty(d Difficulty) error {
	if !d.Valid() {
		return ErrInvalidDifficulty
	}
	r.difficulty = d
	return nil
}

// SetNutrition sets the nutrition facts
func (r *Recipe) SetNutrition(n Nutrition) {
	r.nutrition = n
}

// SetDietaryTags replaces the dietary tags
func (r *Recipe) SetDietaryTags(tags []string) {
	r.dietaryTags = tags
}

// SetHealthTags replaces the health-condition tags
func (r *Recipe) SetHealthTags(tags []string) {
	r.healthTags = tags
}

// SetRating sets the external catalog rating
func (r *Recipe) SetRating(rating float64) {
	r.rating = rating
}

// Hydrate restores a recipe loaded from persistence with its stored identifier.
func Hydrate(
	id uuid.UUID,
	name, cuisine string,
	ingredients, instructions []string,
	cookingTime int,
	difficulty Difficulty,
	servings int,
	nutrition Nutrition,
	dietaryTags, healthTags []string,
	rating float64,
) *Recipe {
	return &Recipe{
		id:           id,
		name:         name,
		cuisine:      cuisine,
		ingredients:  ingredients,
		instructions: instructions,
		cookingTime:  cookingTime,
		difficulty:   difficulty,
		servings:     servings,
		nutrition:    nutrition,
		dietaryTags:  dietaryTags,
		healthTags:   healthTags,
		rating:       rating,
	}
}
