package recommendation_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/application/recommendation"
	"github.com/platewise/v1/internal/domain/preference"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	apperrors "github.com/platewise/v1/pkg/errors"
	"github.com/platewise/v1/test/testutils"
)

// RecommendationServiceTestSuite exercises the service against in-memory
// adapters.
type RecommendationServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	service      inbound.RecommendationService
	recipes      outbound.RecipeRepository
	interactions outbound.InteractionStore

	mediterranean *recipe.Recipe
	italian       *recipe.Recipe
	thai          *recipe.Recipe
}

func (s *RecommendationServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.recipes = memory.NewRecipeRepository()

	s.mediterranean = testutils.NewRecipeBuilder().
		WithName("Greek Salad").
		WithCuisine("mediterranean").
		WithIngredients("chicken breast", "tomato", "feta cheese").
		WithCookingTime(20).
		WithRating(4.0).
		Build()
	s.italian = testutils.NewRecipeBuilder().
		WithName("Carbonara").
		WithCuisine("italian").
		WithIngredients("pasta", "eggs", "pancetta").
		WithCookingTime(25).
		WithRating(4.8).
		Build()
	s.thai = testutils.NewRecipeBuilder().
		WithName("Green Curry").
		WithCuisine("thai").
		WithIngredients("coconut milk", "basil").
		WithCookingTime(35).
		WithRating(4.5).
		Build()

	for _, r := range []*recipe.Recipe{s.mediterranean, s.italian, s.thai} {
		require.NoError(s.T(), s.recipes.Save(s.ctx, r))
	}

	s.interactions = memory.NewInteractionStore()
	s.service = recommendation.NewService(
		memory.NewProfileStore(),
		s.recipes,
		s.interactions,
		memory.NewCacheRepository(),
		0,
		monitoring.NewMetrics(prometheus.NewRegistry()),
		zap.NewNop(),
	)
}

func (s *RecommendationServiceTestSuite) TestColdStartRanksByCatalogRating() {
	recs, err := s.service.Recommend(s.ctx, "newcomer", 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), recs, 3)

	assert.Equal(s.T(), "Carbonara", recs[0].Recipe.Name)
	assert.Equal(s.T(), 4.8, recs[0].Score)
	assert.Equal(s.T(), "Green Curry", recs[1].Recipe.Name)
	assert.Equal(s.T(), "Greek Salad", recs[2].Recipe.Name)
}

func (s *RecommendationServiceTestSuite) TestInteractionsPersonalizeRanking() {
	record := func(kind preference.Kind, rating *int) {
		err := s.service.RecordInteraction(s.ctx, inbound.RecordInteractionCommand{
			UserID:   "user-1",
			RecipeID: s.mediterranean.ID(),
			Kind:     kind,
			Rating:   rating,
		})
		require.NoError(s.T(), err)
	}

	record(preference.KindCook, nil)
	record(preference.KindRate, testutils.IntPtr(5))

	recs, err := s.service.Recommend(s.ctx, "user-1", 10)
	require.NoError(s.T(), err)
	require.Len(s.T(), recs, 3)

	assert.Equal(s.T(), "Greek Salad", recs[0].Recipe.Name)
	// cuisine 10*0.3 + time bucket 10*0.15 + 3 ingredients 10*0.1 each
	// + mild spice 10*0.05.
	assert.InDelta(s.T(), 8.0, recs[0].Score, 0.001)
}

func (s *RecommendationServiceTestSuite) TestRecommendLimitTruncates() {
	recs, err := s.service.Recommend(s.ctx, "user-1", 2)
	require.NoError(s.T(), err)
	assert.Len(s.T(), recs, 2)
}

func (s *RecommendationServiceTestSuite) TestRecordInteractionUnknownRecipe() {
	err := s.service.RecordInteraction(s.ctx, inbound.RecordInteractionCommand{
		UserID:   "user-1",
		RecipeID: uuid.New(),
		Kind:     preference.KindView,
	})

	assert.True(s.T(), apperrors.Is(err, apperrors.CodeRecipeNotFound))
}

func (s *RecommendationServiceTestSuite) TestRecordRateWithoutRatingFails() {
	err := s.service.RecordInteraction(s.ctx, inbound.RecordInteractionCommand{
		UserID:   "user-1",
		RecipeID: s.italian.ID(),
		Kind:     preference.KindRate,
	})

	assert.True(s.T(), apperrors.Is(err, apperrors.CodeMissingRating))
}

func (s *RecommendationServiceTestSuite) TestRecordUnknownKindFails() {
	err := s.service.RecordInteraction(s.ctx, inbound.RecordInteractionCommand{
		UserID:   "user-1",
		RecipeID: s.italian.ID(),
		Kind:     preference.Kind("share"),
	})

	assert.True(s.T(), apperrors.Is(err, apperrors.CodeUnknownKind))
}

func (s *RecommendationServiceTestSuite) TestExplainUnknownUserGetsPopularityFallback() {
	reasons, err := s.service.Explain(s.ctx, "stranger", s.italian.ID())
	require.NoError(s.T(), err)

	assert.Equal(s.T(), []string{preference.PopularExplanation}, reasons)
}

func (s *RecommendationServiceTestSuite) TestExplainAfterStrongSignal() {
	for i := 0; i < 2; i++ {
		err := s.service.RecordInteraction(s.ctx, inbound.RecordInteractionCommand{
			UserID:   "user-1",
			RecipeID: s.thai.ID(),
			Kind:     preference.KindCook,
		})
		require.NoError(s.T(), err)
	}

	reasons, err := s.service.Explain(s.ctx, "user-1", s.thai.ID())
	require.NoError(s.T(), err)

	assert.Contains(s.T(), reasons, "You seem to enjoy thai cuisine")
}

func (s *RecommendationServiceTestSuite) TestExplainUnknownRecipe() {
	_, err := s.service.Explain(s.ctx, "user-1", uuid.New())
	assert.True(s.T(), apperrors.Is(err, apperrors.CodeRecipeNotFound))
}

func (s *RecommendationServiceTestSuite) TestPreferenceSummaryUnknownUserIsEmpty() {
	summary, err := s.service.PreferenceSummary(s.ctx, "stranger")
	require.NoError(s.T(), err)
	assert.Empty(s.T(), summary)
}

func (s *RecommendationServiceTestSuite) TestPreferenceSummaryTracksTopCuisine() {
	err := s.service.RecordInteraction(s.ctx, inbound.RecordInteractionCommand{
		UserID:   "user-1",
		RecipeID: s.thai.ID(),
		Kind:     preference.KindFavorite,
	})
	require.NoError(s.T(), err)

	summary, err := s.service.PreferenceSummary(s.ctx, "user-1")
	require.NoError(s.T(), err)

	require.Contains(s.T(), summary, "cuisines")
	assert.Equal(s.T(), "thai", summary["cuisines"].Top)
	assert.Equal(s.T(), 5.0, summary["cuisines"].TopWeight)
}

func (s *RecommendationServiceTestSuite) TestInteractionInvalidatesCachedRanking() {
	// Prime the cache with the cold-start ordering.
	recs, err := s.service.Recommend(s.ctx, "user-1", 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Carbonara", recs[0].Recipe.Name)

	err = s.service.RecordInteraction(s.ctx, inbound.RecordInteractionCommand{
		UserID:   "user-1",
		RecipeID: s.mediterranean.ID(),
		Kind:     preference.KindFavorite,
	})
	require.NoError(s.T(), err)

	recs, err = s.service.Recommend(s.ctx, "user-1", 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Greek Salad", recs[0].Recipe.Name)
}

func (s *RecommendationServiceTestSuite) TestInteractionHistoryPagesNewestFirst() {
	for _, r := range []*recipe.Recipe{s.mediterranean, s.italian, s.thai} {
		err := s.service.RecordInteraction(s.ctx, inbound.RecordInteractionCommand{
			UserID:   "user-1",
			RecipeID: r.ID(),
			Kind:     preference.KindView,
		})
		require.NoError(s.T(), err)
	}

	history, err := s.service.InteractionHistory(s.ctx, "user-1", 2)
	require.NoError(s.T(), err)

	assert.Equal(s.T(), int64(3), history.Total)
	require.Len(s.T(), history.Events, 2)
	assert.Equal(s.T(), s.thai.ID(), history.Events[0].RecipeID)
	assert.Equal(s.T(), s.italian.ID(), history.Events[1].RecipeID)
}

func (s *RecommendationServiceTestSuite) TestInteractionHistoryUnknownUserIsEmpty() {
	history, err := s.service.InteractionHistory(s.ctx, "stranger", 0)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(0), history.Total)
	assert.Empty(s.T(), history.Events)
}

func (s *RecommendationServiceTestSuite) TestRebuildProfilesReplaysEventLog() {
	err := s.service.RecordInteraction(s.ctx, inbound.RecordInteractionCommand{
		UserID:   "user-1",
		RecipeID: s.mediterranean.ID(),
		Kind:     preference.KindCook,
	})
	require.NoError(s.T(), err)
	err = s.service.RecordInteraction(s.ctx, inbound.RecordInteractionCommand{
		UserID:   "user-1",
		RecipeID: s.mediterranean.ID(),
		Kind:     preference.KindRate,
		Rating:   testutils.IntPtr(5),
	})
	require.NoError(s.T(), err)

	// A restart keeps the recipe catalog and event log but loses the
	// in-process profiles.
	restarted := recommendation.NewService(
		memory.NewProfileStore(),
		s.recipes,
		s.interactions,
		memory.NewCacheRepository(),
		0,
		monitoring.NewMetrics(prometheus.NewRegistry()),
		zap.NewNop(),
	)

	recs, err := restarted.Recommend(s.ctx, "user-1", 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Carbonara", recs[0].Recipe.Name, "profiles start empty before replay")

	require.NoError(s.T(), restarted.RebuildProfiles(s.ctx))

	recs, err = restarted.Recommend(s.ctx, "user-1", 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Greek Salad", recs[0].Recipe.Name)
	assert.InDelta(s.T(), 8.0, recs[0].Score, 0.001)
}

func TestRecommendationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecommendationServiceTestSuite))
}
