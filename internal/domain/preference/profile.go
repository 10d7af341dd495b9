package preference

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/platewise/v1/internal/domain/recipe"
)

// Scoring coefficients per facet. Each match multiplies the coefficient by
// the accumulated facet weight, so a stronger profile signal raises the
// contribution proportionally.
const (
	coeffCuisine    = 0.3
	coeffDietaryTag = 0.2
	coeffTimeBucket = 0.15
	coeffIngredient = 0.1
	coeffHealthGoal = 0.2
	coeffSpiceLevel = 0.05
)

// Explanation thresholds: a facet value only produces a sentence once its
// accumulated weight clears the minimum signal (strictly greater than).
const (
	explainCuisineThreshold = 2.0
	explainFacetThreshold   = 1.0
)

// Number of ingredients per interaction that contribute to the profile.
const maxProfiledIngredients = 5

// Profile holds one user's accumulated facet weights. Weights change only
// by adding signed interaction weights; they may go negative and are never
// reset except by re-initialization.
type Profile struct {
	UserID       string
	Cuisines     map[string]float64
	Ingredients  map[string]float64
	DietaryTags  map[string]float64
	CookingTimes map[string]float64
	SpiceLevels  map[string]float64
	HealthGoals  map[string]float64
	UpdatedAt    time.Time
}

// NewProfile creates an empty profile for a user.
func NewProfile(userID string) *Profile {
	return &Profile{
		UserID:       userID,
		Cuisines:     make(map[string]float64),
		Ingredients:  make(map[string]float64),
		DietaryTags:  make(map[string]float64),
		CookingTimes: make(map[string]float64),
		SpiceLevels:  make(map[string]float64),
		HealthGoals:  make(map[string]float64),
		UpdatedAt:    time.Now(),
	}
}

// Apply adds the signed interaction weight to every facet the recipe
// features touch. Replaying the same event double-counts on purpose:
// repeated interactions strengthen the preference.
func (p *Profile) Apply(weight float64, f Features) {
	if f.Cuisine != "" {
		p.Cuisines[f.Cuisine] += weight
	}

	for _, tag := range f.DietaryTags {
		p.DietaryTags[tag] += weight
	}

	p.CookingTimes[TimeBucket(f.CookingTime)] += weight

	ingredients := f.Ingredients
	if len(ingredients) > maxProfiledIngredients {
		ingredients = ingredients[:maxProfiledIngredients]
	}
	for _, ing := range ingredients {
		p.Ingredients[ing] += weight
	}

	for _, condition := range f.HealthTags {
		p.HealthGoals[condition] += weight
	}

	p.SpiceLevels[spiceLevel(f.DietaryTags)] += weight

	p.UpdatedAt = time.Now()
}

// Score computes the personalization score for a recipe. Unknown facet
// values read as zero weight; the result is clamped at zero so negative
// accumulations cannot drive the total below it.
func (p *Profile) Score(r *recipe.Recipe) float64 {
	score := p.Cuisines[r.Cuisine()] * coeffCuisine

	for _, tag := range r.DietaryTags() {
		score += p.DietaryTags[tag] * coeffDietaryTag
	}

	score += p.CookingTimes[TimeBucket(r.CookingTime())] * coeffTimeBucket

	// The full ingredient list counts for scoring, unlike the 5-entry
	// truncation used when accumulating.
	for _, ing := range r.Ingredients() {
		score += p.Ingredients[ing] * coeffIngredient
	}

	for _, condition := range r.HealthTags() {
		score += p.HealthGoals[condition] * coeffHealthGoal
	}

	if r.IsSpicy() {
		score += p.SpiceLevels[SpiceLevelSpicy] * coeffSpiceLevel
	} else {
		score += p.SpiceLevels[SpiceLevelMild] * coeffSpiceLevel
	}

	if score < 0 {
		return 0
	}
	return score
}

// FallbackExplanation is returned when no facet clears its threshold.
const FallbackExplanation = "Recommended based on overall preferences"

// PopularExplanation is returned for users with no profile.
const PopularExplanation = "Recommended as a popular recipe"

// Explain produces human-readable reasons a recipe suits this profile,
// one sentence per qualifying facet category.
func (p *Profile) Explain(r *recipe.Recipe) []string {
	var explanations []string

	if p.Cuisines[r.Cuisine()] > explainCuisineThreshold {
		explanations = append(explanations, fmt.Sprintf("You seem to enjoy %s cuisine", r.Cuisine()))
	}

	var matchingTags []string
	for _, tag := range r.DietaryTags() {
		if p.DietaryTags[tag] > explainFacetThreshold {
			matchingTags = append(matchingTags, tag)
		}
	}
	if len(matchingTags) > 0 {
		explanations = append(explanations, fmt.Sprintf("Matches your preferences: %s", strings.Join(matchingTags, ", ")))
	}

	bucket := TimeBucket(r.CookingTime())
	if p.CookingTimes[bucket] > explainFacetThreshold {
		explanations = append(explanations, fmt.Sprintf("Fits your preferred cooking time (%s)", bucket))
	}

	var likedIngredients []string
	for _, ing := range r.Ingredients() {
		if p.Ingredients[ing] > explainFacetThreshold {
			likedIngredients = append(likedIngredients, ing)
		}
	}
	if len(likedIngredients) > 0 {
		if len(likedIngredients) > 3 {
			likedIngredients = likedIngredients[:3]
		}
		explanations = append(explanations, fmt.Sprintf("Contains ingredients you like: %s", strings.Join(likedIngredients, ", ")))
	}

	var matchingGoals []string
	for _, condition := range r.HealthTags() {
		if p.HealthGoals[condition] > explainFacetThreshold {
			matchingGoals = append(matchingGoals, humanize(condition))
		}
	}
	if len(matchingGoals) > 0 {
		explanations = append(explanations, fmt.Sprintf("Aligns with your health goals: %s", strings.Join(matchingGoals, ", ")))
	}

	if len(explanations) == 0 {
		return []string{FallbackExplanation}
	}
	return explanations
}

// Clone returns a deep copy of the profile, so scoring can run on a
// snapshot outside the store's lock.
func (p *Profile) Clone() *Profile {
	return &Profile{
		UserID:       p.UserID,
		Cuisines:     cloneMap(p.Cuisines),
		Ingredients:  cloneMap(p.Ingredients),
		DietaryTags:  cloneMap(p.DietaryTags),
		CookingTimes: cloneMap(p.CookingTimes),
		SpiceLevels:  cloneMap(p.SpiceLevels),
		HealthGoals:  cloneMap(p.HealthGoals),
		UpdatedAt:    p.UpdatedAt,
	}
}

// FacetSummary describes the strongest values of one facet category.
type FacetSummary struct {
	Top       string             `json:"top_preference"`
	TopWeight float64            `json:"top_weight"`
	Weights   map[string]float64 `json:"weights"`
}

// Summary returns the top preferences per facet category, strongest first,
// at most five values per facet.
func (p *Profile) Summary() map[string]FacetSummary {
	summary := make(map[string]FacetSummary)
	facets := map[string]map[string]float64{
		"cuisines":      p.Cuisines,
		"ingredients":   p.Ingredients,
		"dietary_tags":  p.DietaryTags,
		"cooking_times": p.CookingTimes,
		"spice_levels":  p.SpiceLevels,
		"health_goals":  p.HealthGoals,
	}

	for name, weights := range facets {
		if len(weights) == 0 {
			continue
		}
		keys := make([]string, 0, len(weights))
		for k := range weights {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if weights[keys[i]] != weights[keys[j]] {
				return weights[keys[i]] > weights[keys[j]]
			}
			return keys[i] < keys[j]
		})

		top := keys
		if len(top) > 5 {
			top = top[:5]
		}
		topWeights := make(map[string]float64, len(top))
		for _, k := range top {
			topWeights[k] = weights[k]
		}

		summary[name] = FacetSummary{
			Top:       keys[0],
			TopWeight: weights[keys[0]],
			Weights:   topWeights,
		}
	}

	return summary
}

func cloneMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func humanize(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	return strings.ReplaceAll(s, "_", " ")
}
