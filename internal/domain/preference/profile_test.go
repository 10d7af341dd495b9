package preference_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/platewise/v1/internal/domain/preference"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/test/testutils"
)

// ProfileTestSuite covers weight accumulation, scoring and explanations.
type ProfileTestSuite struct {
	suite.Suite
	profile *preference.Profile
}

func (s *ProfileTestSuite) SetupTest() {
	s.profile = preference.NewProfile("user-1")
}

func (s *ProfileTestSuite) TestEmptyProfileScoresZero() {
	r := testutils.NewRecipeBuilder().
		WithCuisine("mediterranean").
		WithIngredients("chicken breast", "tomato").
		Build()

	assert.Equal(s.T(), 0.0, s.profile.Score(r))
}

func (s *ProfileTestSuite) TestPositiveInteractionRaisesScore() {
	r := testutils.NewRecipeBuilder().
		WithCuisine("thai").
		WithIngredients("coconut milk", "basil").
		Build()

	before := s.profile.Score(r)
	s.profile.Apply(3.0, preference.FeaturesOf(r))
	after := s.profile.Score(r)

	assert.Greater(s.T(), after, before)
}

func (s *ProfileTestSuite) TestReplayAccumulatesLinearly() {
	r := testutils.NewRecipeBuilder().
		WithCuisine("mexican").
		WithIngredients("tortillas", "ground beef").
		Build()
	features := preference.FeaturesOf(r)

	for i := 0; i < 4; i++ {
		s.profile.Apply(1.0, features)
	}

	assert.Equal(s.T(), 4.0, s.profile.Cuisines["mexican"])
	assert.Equal(s.T(), 4.0, s.profile.Ingredients["tortillas"])
}

func (s *ProfileTestSuite) TestCookThenRateFiveAccumulatesCuisineWeight() {
	r := testutils.NewRecipeBuilder().
		WithCuisine("mediterranean").
		WithIngredients("chicken breast", "olive oil").
		WithCookingTime(20).
		Build()
	features := preference.FeaturesOf(r)

	cook := testutils.NewInteraction("user-1", r.ID(), preference.KindCook, nil)
	w, err := cook.Weight()
	require.NoError(s.T(), err)
	s.profile.Apply(w, features)

	rate := testutils.NewInteraction("user-1", r.ID(), preference.KindRate, testutils.IntPtr(5))
	w, err = rate.Weight()
	require.NoError(s.T(), err)
	s.profile.Apply(w, features)

	// cook (3.0) + rating 5 (7.0)
	assert.Equal(s.T(), 10.0, s.profile.Cuisines["mediterranean"])

	// The cuisine term of the score is weight * 0.3.
	score := s.profile.Score(r)
	assert.GreaterOrEqual(s.T(), score, 3.0)
}

func (s *ProfileTestSuite) TestScoreClampsAtZero() {
	r := testutils.NewRecipeBuilder().
		WithCuisine("italian").
		WithIngredients("pasta").
		Build()
	features := preference.FeaturesOf(r)

	// Repeated skips drive every facet weight negative.
	for i := 0; i < 10; i++ {
		s.profile.Apply(-1.0, features)
	}

	assert.Equal(s.T(), 0.0, s.profile.Score(r))
}

func (s *ProfileTestSuite) TestApplyTruncatesIngredientsToFive() {
	r := testutils.NewRecipeBuilder().
		WithIngredients("a", "b", "c", "d", "e", "f", "g").
		Build()

	s.profile.Apply(1.0, preference.FeaturesOf(r))

	assert.Equal(s.T(), 1.0, s.profile.Ingredients["e"])
	assert.NotContains(s.T(), s.profile.Ingredients, "f")
	assert.NotContains(s.T(), s.profile.Ingredients, "g")
}

func (s *ProfileTestSuite) TestScoreUsesFullIngredientList() {
	seen := testutils.NewRecipeBuilder().
		WithCuisine("fusion").
		WithIngredients("a", "b", "c", "d", "e", "f").
		Build()
	s.profile.Apply(1.0, preference.FeaturesOf(seen))

	// Seed weight for "f" through a recipe where it sits in the first five.
	other := testutils.NewRecipeBuilder().
		WithCuisine("fusion").
		WithIngredients("f").
		Build()
	s.profile.Apply(2.0, preference.FeaturesOf(other))

	withF := s.profile.Score(seen)

	noF := testutils.NewRecipeBuilder().
		WithCuisine("fusion").
		WithIngredients("a", "b", "c", "d", "e").
		WithCookingTime(seen.CookingTime()).
		Build()
	withoutF := s.profile.Score(noF)

	assert.Greater(s.T(), withF, withoutF)
}

func (s *ProfileTestSuite) TestExplainCuisineThresholdIsStrict() {
	r := testutils.NewRecipeBuilder().
		WithCuisine("japanese").
		WithIngredients("rice").
		Build()

	s.profile.Cuisines["japanese"] = 2.0
	reasons := s.profile.Explain(r)
	assert.NotContains(s.T(), reasons, "You seem to enjoy japanese cuisine")

	s.profile.Cuisines["japanese"] = 2.01
	reasons = s.profile.Explain(r)
	assert.Contains(s.T(), reasons, "You seem to enjoy japanese cuisine")
}

func (s *ProfileTestSuite) TestExplainFallsBackWhenNothingQualifies() {
	r := testutils.NewRecipeBuilder().
		WithCuisine("korean").
		WithIngredients("gochujang").
		Build()

	reasons := s.profile.Explain(r)
	assert.Equal(s.T(), []string{preference.FallbackExplanation}, reasons)
}

func (s *ProfileTestSuite) TestExplainListsAtMostThreeIngredients() {
	r := testutils.NewRecipeBuilder().
		WithIngredients("a", "b", "c", "d").
		Build()

	for _, ing := range []string{"a", "b", "c", "d"} {
		s.profile.Ingredients[ing] = 5.0
	}

	reasons := s.profile.Explain(r)
	assert.Contains(s.T(), reasons, "Contains ingredients you like: a, b, c")
}

func (s *ProfileTestSuite) TestExplainHumanizesHealthGoals() {
	r := testutils.NewRecipeBuilder().
		WithIngredients("salmon").
		WithHealthTags("heart_health").
		Build()

	s.profile.HealthGoals["heart_health"] = 3.0

	reasons := s.profile.Explain(r)
	assert.Contains(s.T(), reasons, "Aligns with your health goals: heart health")
}

func (s *ProfileTestSuite) TestSummaryRanksStrongestFirst() {
	s.profile.Cuisines["thai"] = 8.0
	s.profile.Cuisines["italian"] = 3.0

	summary := s.profile.Summary()
	require.Contains(s.T(), summary, "cuisines")
	assert.Equal(s.T(), "thai", summary["cuisines"].Top)
	assert.Equal(s.T(), 8.0, summary["cuisines"].TopWeight)
}

func (s *ProfileTestSuite) TestCloneIsIndependent() {
	s.profile.Cuisines["thai"] = 2.0

	clone := s.profile.Clone()
	clone.Cuisines["thai"] = 99.0

	assert.Equal(s.T(), 2.0, s.profile.Cuisines["thai"])
}

func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileTestSuite))
}

func TestRankStableOnTies(t *testing.T) {
	a := testutils.NewRecipeBuilder().WithName("A").WithRating(4.0).Build()
	b := testutils.NewRecipeBuilder().WithName("B").WithRating(4.0).Build()
	c := testutils.NewRecipeBuilder().WithName("C").WithRating(4.0).Build()

	// Equal catalog ratings, nil profile: input order must survive.
	ranked := preference.Rank(nil, []*recipe.Recipe{a, b, c}, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, "A", ranked[0].Recipe.Name())
	assert.Equal(t, "B", ranked[1].Recipe.Name())
	assert.Equal(t, "C", ranked[2].Recipe.Name())
}

func TestRankNilProfileFallsBackToRating(t *testing.T) {
	low := testutils.NewRecipeBuilder().WithName("low").WithRating(3.1).Build()
	high := testutils.NewRecipeBuilder().WithName("high").WithRating(4.9).Build()

	ranked := preference.Rank(nil, []*recipe.Recipe{low, high}, 0)
	require.Len(t, ranked, 2)
	assert.Equal(t, "high", ranked[0].Recipe.Name())
	assert.Equal(t, 4.9, ranked[0].Score)
}

func TestRankHonorsLimit(t *testing.T) {
	profile := preference.NewProfile("user-1")

	r1 := testutils.NewRecipeBuilder().WithName("one").Build()
	r2 := testutils.NewRecipeBuilder().WithName("two").Build()
	r3 := testutils.NewRecipeBuilder().WithName("three").Build()

	ranked := preference.Rank(profile, []*recipe.Recipe{r1, r2, r3}, 2)
	assert.Len(t, ranked, 2)
}

func TestInteractionIDsAreUnique(t *testing.T) {
	id := uuid.New()
	e1 := testutils.NewInteraction("u", id, preference.KindView, nil)
	e2 := testutils.NewInteraction("u", id, preference.KindView, nil)
	assert.NotEqual(t, e1.ID, e2.ID)
}
