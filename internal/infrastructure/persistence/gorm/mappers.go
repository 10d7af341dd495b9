package gorm

import (
	"github.com/platewise/v1/internal/domain/recipe"
)

func toRecipeModel(rec *recipe.Recipe) RecipeModel {
	n := rec.Nutrition()
	return RecipeModel{
		ID:                 rec.ID(),
		Name:               rec.Name(),
		Cuisine:            rec.Cuisine(),
		Ingredients:        StringSlice(rec.Ingredients()),
		Instructions:       StringSlice(rec.Instructions()),
		CookingTimeMinutes: rec.CookingTime(),
		Difficulty:         string(rec.Difficulty()),
		Servings:           rec.Servings(),
		Calories:           n.Calories,
		Protein:            n.Protein,
		Carbs:              n.Carbs,
		Fat:                n.Fat,
		Fiber:              n.Fiber,
		Sodium:             n.Sodium,
		DietaryTags:        StringSlice(rec.DietaryTags()),
		HealthTags:         StringSlice(rec.HealthTags()),
		Rating:             rec.Rating(),
	}
}

func toRecipeEntity(m RecipeModel) *recipe.Recipe {
	return recipe.Hydrate(
		m.ID,
		m.Name,
		m.Cuisine,
		[]string(m.Ingredients),
		[]string(m.Instructions),
		m.CookingTimeMinutes,
		recipe.Difficulty(m.Difficulty),
		m.Servings,
		recipe.Nutrition{
			Calories: m.Calories,
			Protein:  m.Protein,
			Carbs:    m.Carbs,
			Fat:      m.Fat,
			Fiber:    m.Fiber,
			Sodium:   m.Sodium,
		},
		[]string(m.DietaryTags),
		[]string(m.HealthTags),
		m.Rating,
	)
}
