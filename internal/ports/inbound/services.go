// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the transport layer invokes.
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/nutrition"
	"github.com/platewise/v1/internal/domain/preference"
	"github.com/platewise/v1/internal/domain/substitution"
)

// RecommendationService covers interaction recording, personalized
// ranking and explanation. RebuildProfiles replays the persisted event
// log into the profile store and runs once at startup.
type RecommendationService interface {
	RecordInteraction(ctx context.Context, cmd RecordInteractionCommand) error
	Recommend(ctx context.Context, userID string, limit int) ([]RecommendationDTO, error)
	Explain(ctx context.Context, userID string, recipeID uuid.UUID) ([]string, error)
	PreferenceSummary(ctx context.Context, userID string) (map[string]preference.FacetSummary, error)
	InteractionHistory(ctx context.Context, userID string, limit int) (InteractionHistoryDTO, error)
	RebuildProfiles(ctx context.Context) error
}

// RecordInteractionCommand carries one user action on a recipe.
type RecordInteractionCommand struct {
	UserID   string          `json:"user_id" validate:"required"`
	RecipeID uuid.UUID       `json:"recipe_id" validate:"required"`
	Kind     preference.Kind `json:"kind" validate:"required"`
	Rating   *int            `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// InteractionHistoryDTO is a page of a user's event log, newest first.
type InteractionHistoryDTO struct {
	Total  int64            `json:"total"`
	Events []InteractionDTO `json:"events"`
}

// InteractionDTO is the transport representation of one logged event.
type InteractionDTO struct {
	ID         uuid.UUID `json:"id"`
	RecipeID   uuid.UUID `json:"recipe_id"`
	Kind       string    `json:"kind"`
	Rating     *int      `json:"rating,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RecommendationDTO is a ranked recipe view with its request-scoped score.
type RecommendationDTO struct {
	Recipe RecipeDTO `json:"recipe"`
	Score  float64   `json:"score"`
}

// RecipeDTO is the transport representation of a catalog recipe.
type RecipeDTO struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Cuisine      string       `json:"cuisine"`
	Ingredients  []string     `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	CookingTime  int          `json:"cooking_time"`
	Difficulty   string       `json:"difficulty"`
	Servings     int          `json:"servings"`
	Nutrition    NutritionDTO `json:"nutrition"`
	DietaryTags  []string     `json:"dietary_tags"`
	HealthTags   []string     `json:"health_tags"`
	Rating       float64      `json:"rating"`
}

// NutritionDTO is the transport representation of nutrition facts.
type NutritionDTO struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// KitchenService covers substitutions, nutrition analysis and
// caption-driven ingredient scanning.
type KitchenService interface {
	FindSubstitutes(ctx context.Context, query SubstituteQuery) (substitution.Suggestion, error)
	AnalyzeRecipe(ctx context.Context, recipeID uuid.UUID, group nutrition.AudienceGroup, healthGoals []string) (*nutrition.Analysis, error)
	NutritionTargets(ctx context.Context, profile nutrition.TargetProfile) TargetsReport
	ScanImage(ctx context.Context, image []byte) (*ScanResult, error)
}

// SubstituteQuery asks for replacements for one ingredient.
type SubstituteQuery struct {
	Ingredient          string   `json:"ingredient" validate:"required"`
	DietaryRestrictions []string `json:"dietary_restrictions,omitempty"`
	HealthGoals         []string `json:"health_goals,omitempty"`
	BudgetConscious     bool     `json:"budget_conscious,omitempty"`
}

// TargetsReport pairs computed daily targets with dietary guidance.
type TargetsReport struct {
	Targets nutrition.Targets `json:"targets"`
	Advice  []string          `json:"advice,omitempty"`
}

// ScanResult is the outcome of a caption-driven ingredient scan.
type ScanResult struct {
	Caption           string              `json:"caption"`
	Ingredients       []string            `json:"ingredients"`
	Categories        map[string][]string `json:"categories"`
	CookingMethods    []string            `json:"cooking_methods"`
	EstimatedServings int                 `json:"estimated_servings"`
	Matches           []RecipeMatchDTO    `json:"matches"`
}

// RecipeMatchDTO is a catalog recipe matched against scanned ingredients.
type RecipeMatchDTO struct {
	Recipe       RecipeDTO `json:"recipe"`
	MatchPercent float64   `json:"match_percent"`
	Overlap      []string  `json:"matching_ingredients"`
}

// RecipeService exposes read access to the catalog.
type RecipeService interface {
	GetRecipe(ctx context.Context, id uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context, cuisine string) ([]RecipeDTO, error)
}
