// Package kitchen provides the application layer for ingredient
// substitution, nutrition analysis and caption-driven ingredient scanning.
package kitchen

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/application/recommendation"
	"github.com/platewise/v1/internal/domain/nutrition"
	"github.com/platewise/v1/internal/domain/substitution"
	"github.com/platewise/v1/internal/domain/vision"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

// Service implements the kitchen use cases.
type Service struct {
	recipes       outbound.RecipeRepository
	captions      outbound.CaptionService
	substitutions *substitution.Engine
	analyzer      *nutrition.Analyzer
	extractor     *vision.Extractor
	metrics       *monitoring.Metrics
	logger        *zap.Logger
}

// NewService creates a new kitchen service.
func NewService(
	recipes outbound.RecipeRepository,
	captions outbound.CaptionService,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) inbound.KitchenService {
	return &Service{
		recipes:       recipes,
		captions:      captions,
		substitutions: substitution.NewEngine(),
		analyzer:      nutrition.NewAnalyzer(),
		extractor:     vision.NewExtractor(),
		metrics:       metrics,
		logger:        logger.Named("kitchen-service"),
	}
}

// FindSubstitutes suggests replacements for an ingredient.
func (s *Service) FindSubstitutes(ctx context.Context, query inbound.SubstituteQuery) (substitution.Suggestion, error) {
	if query.Ingredient == "" {
		return substitution.Suggestion{}, errors.NewInvalidArgumentError("ingredient is required")
	}

	suggestion := s.substitutions.Find(query.Ingredient, substitution.Query{
		DietaryRestrictions: query.DietaryRestrictions,
		HealthGoals:         query.HealthGoals,
		BudgetConscious:     query.BudgetConscious,
	})

	s.logger.Debug("Resolved substitutes",
		zap.String("ingredient", query.Ingredient),
		zap.Int("alternatives", len(suggestion.Alternatives)),
	)

	return suggestion, nil
}

// AnalyzeRecipe evaluates a recipe's nutrition facts for an audience group.
func (s *Service) AnalyzeRecipe(ctx context.Context, recipeID uuid.UUID, group nutrition.AudienceGroup, healthGoals []string) (*nutrition.Analysis, error) {
	r, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if r == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	analysis := s.analyzer.Analyze(r.Nutrition(), group, healthGoals)
	return &analysis, nil
}

// NutritionTargets derives personalized daily targets and the dietary
// guidance matching the profile's conditions and restrictions.
func (s *Service) NutritionTargets(ctx context.Context, profile nutrition.TargetProfile) inbound.TargetsReport {
	return inbound.TargetsReport{
		Targets: nutrition.CalculateTargets(profile),
		Advice:  nutrition.DietaryAdvice(profile.HealthConditions, profile.DietaryRestrictions),
	}
}

// ScanImage captions the image through the external model, extracts
// ingredient keywords from the caption and matches catalog recipes.
func (s *Service) ScanImage(ctx context.Context, image []byte) (*inbound.ScanResult, error) {
	if len(image) == 0 {
		return nil, errors.NewInvalidArgumentError("image payload is empty")
	}

	caption, err := s.captions.Describe(ctx, image)
	if err != nil {
		return nil, errors.NewExternalServiceError("caption service", err)
	}

	ingredients := s.extractor.ExtractIngredients(caption)

	categorized := s.extractor.Categorize(ingredients)
	categories := make(map[string][]string, len(categorized))
	for category, items := range categorized {
		categories[string(category)] = items
	}

	result := &inbound.ScanResult{
		Caption:           caption,
		Ingredients:       ingredients,
		Categories:        categories,
		CookingMethods:    s.extractor.SuggestMethods(ingredients),
		EstimatedServings: s.extractor.EstimateServings(ingredients, caption),
	}

	catalog, err := s.recipes.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("load catalog", err)
	}

	for _, m := range s.extractor.MatchRecipes(ingredients, catalog) {
		result.Matches = append(result.Matches, inbound.RecipeMatchDTO{
			Recipe:       recommendation.RecipeToDTO(m.Recipe),
			MatchPercent: m.MatchPercent,
			Overlap:      m.Overlap,
		})
	}

	s.metrics.ImageScans.Inc()

	s.logger.Info("Scanned image",
		zap.Int("ingredients", len(ingredients)),
		zap.Int("matches", len(result.Matches)),
	)

	return result, nil
}
