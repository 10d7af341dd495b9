package kitchen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/application/kitchen"
	"github.com/platewise/v1/internal/domain/nutrition"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/ports/inbound"
	apperrors "github.com/platewise/v1/pkg/errors"
	"github.com/platewise/v1/test/testutils"
)

// stubCaptionService returns a canned caption or a canned error.
type stubCaptionService struct {
	caption string
	err     error
}

func (s *stubCaptionService) Describe(ctx context.Context, image []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.caption, nil
}

type KitchenServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	captions *stubCaptionService
	service  inbound.KitchenService

	stirFry *recipe.Recipe
}

func (s *KitchenServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.captions = &stubCaptionService{caption: "a plate of chicken with tomato and basil"}

	recipes := memory.NewRecipeRepository()
	s.stirFry = testutils.NewRecipeBuilder().
		WithName("Chicken Stir Fry").
		WithIngredients("chicken", "tomato", "basil", "garlic").
		WithNutrition(recipe.Nutrition{
			Calories: 500,
			Protein:  28,
			Carbs:    50,
			Fat:      13,
			Fiber:    5,
			Sodium:   575,
		}).
		Build()
	require.NoError(s.T(), recipes.Save(s.ctx, s.stirFry))

	s.service = kitchen.NewService(
		recipes,
		s.captions,
		monitoring.NewMetrics(prometheus.NewRegistry()),
		zap.NewNop(),
	)
}

func (s *KitchenServiceTestSuite) TestFindSubstitutesRequiresIngredient() {
	_, err := s.service.FindSubstitutes(s.ctx, inbound.SubstituteQuery{})
	assert.True(s.T(), apperrors.Is(err, apperrors.CodeInvalidArgument))
}

func (s *KitchenServiceTestSuite) TestFindSubstitutesPassesQueryThrough() {
	suggestion, err := s.service.FindSubstitutes(s.ctx, inbound.SubstituteQuery{
		Ingredient:          "butter",
		DietaryRestrictions: []string{"vegan"},
	})
	require.NoError(s.T(), err)

	assert.Equal(s.T(), "butter", suggestion.Original)
	assert.Contains(s.T(), suggestion.Alternatives, "vegan butter")
}

func (s *KitchenServiceTestSuite) TestAnalyzeRecipeDailyValues() {
	analysis, err := s.service.AnalyzeRecipe(s.ctx, s.stirFry.ID(), nutrition.GroupAdultMale, nil)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), 20.0, analysis.DailyValuePercent["calories"])
	assert.Equal(s.T(), 50.0, analysis.DailyValuePercent["protein"])
}

func (s *KitchenServiceTestSuite) TestAnalyzeUnknownRecipe() {
	_, err := s.service.AnalyzeRecipe(s.ctx, uuid.New(), nutrition.GroupAdultMale, nil)
	assert.True(s.T(), apperrors.Is(err, apperrors.CodeRecipeNotFound))
}

func (s *KitchenServiceTestSuite) TestNutritionTargets() {
	report := s.service.NutritionTargets(s.ctx, nutrition.TargetProfile{
		AgeGroup:            nutrition.AgeGroupAdult,
		HealthConditions:    []string{"heart_disease"},
		DietaryRestrictions: []string{"vegan"},
	})

	assert.Equal(s.T(), 1500.0, report.Targets.Sodium)
	assert.Contains(s.T(), report.Advice, "Reduce sodium intake")
	assert.Contains(s.T(), report.Advice, "Monitor B12 intake")
}

func (s *KitchenServiceTestSuite) TestScanImageEndToEnd() {
	result, err := s.service.ScanImage(s.ctx, []byte("fake-image-bytes"))
	require.NoError(s.T(), err)

	assert.Equal(s.T(), s.captions.caption, result.Caption)
	assert.ElementsMatch(s.T(), []string{"chicken", "tomato", "basil"}, result.Ingredients)
	assert.Equal(s.T(), 1, result.EstimatedServings)

	// 3 of 4 catalog ingredients identified.
	require.Len(s.T(), result.Matches, 1)
	assert.Equal(s.T(), "Chicken Stir Fry", result.Matches[0].Recipe.Name)
	assert.Equal(s.T(), 75.0, result.Matches[0].MatchPercent)
}

func (s *KitchenServiceTestSuite) TestScanImageRejectsEmptyPayload() {
	_, err := s.service.ScanImage(s.ctx, nil)
	assert.True(s.T(), apperrors.Is(err, apperrors.CodeInvalidArgument))
}

func (s *KitchenServiceTestSuite) TestScanImageCaptionFailure() {
	s.captions.err = errors.New("model unavailable")

	_, err := s.service.ScanImage(s.ctx, []byte("fake-image-bytes"))
	assert.True(s.T(), apperrors.Is(err, apperrors.CodeExternalServiceError))
}

func TestKitchenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(KitchenServiceTestSuite))
}
