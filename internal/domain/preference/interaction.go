// Package preference implements the personalization engine: per-user facet
// weight accumulation from interaction events, recommendation scoring,
// ranking and human-readable explanations.
package preference

import (
	"time"

	"github.com/google/uuid"

	"github.com/platewise/v1/internal/domain/recipe"
)

// Kind enumerates the interaction kinds a user can have with a recipe.
type Kind string

const (
	KindView     Kind = "view"
	KindCook     Kind = "cook"
	KindFavorite Kind = "favorite"
	KindRate     Kind = "rate"
	KindSkip     Kind = "skip"
)

// Valid reports whether the kind is one of the enumerated values.
func (k Kind) Valid() bool {
	switch k {
	case KindView, KindCook, KindFavorite, KindRate, KindSkip:
		return true
	}
	return false
}

// Interaction weight table. A rating of exactly 3 falls in neither bonus
// band and contributes the default rate weight.
const (
	weightView     = 1.0
	weightCook     = 3.0
	weightFavorite = 5.0
	weightRateHigh = 7.0  // rating >= 4
	weightRateLow  = -2.0 // rating < 3
	weightRate     = 1.0  // rating exactly 3
	weightSkip     = -1.0
)

// Interaction is an append-only record of one user action on a recipe.
type Interaction struct {
	ID         uuid.UUID
	UserID     string
	RecipeID   uuid.UUID
	Kind       Kind
	Rating     *int // required when Kind == KindRate
	OccurredAt time.Time
}

// NewInteraction validates and builds an interaction event.
func NewInteraction(userID string, recipeID uuid.UUID, kind Kind, rating *int) (Interaction, error) {
	if userID == "" {
		return Interaction{}, ErrEmptyUserID
	}
	if !kind.Valid() {
		return Interaction{}, ErrUnknownKind
	}
	if kind == KindRate {
		if rating == nil {
			return Interaction{}, ErrMissingRating
		}
		if *rating < 1 || *rating > 5 {
			return Interaction{}, ErrRatingOutOfRange
		}
	}

	return Interaction{
		ID:         uuid.New(),
		UserID:     userID,
		RecipeID:   recipeID,
		Kind:       kind,
		Rating:     rating,
		OccurredAt: time.Now(),
	}, nil
}

// Weight resolves the signed interaction weight for the event.
func (i Interaction) Weight() (float64, error) {
	return weightFor(i.Kind, i.Rating)
}

func weightFor(kind Kind, rating *int) (float64, error) {
	switch kind {
	case KindView:
		return weightView, nil
	case KindCook:
		return weightCook, nil
	case KindFavorite:
		return weightFavorite, nil
	case KindSkip:
		return weightSkip, nil
	case KindRate:
		if rating == nil {
			return 0, ErrMissingRating
		}
		switch {
		case *rating >= 4:
			return weightRateHigh, nil
		case *rating < 3:
			return weightRateLow, nil
		default:
			return weightRate, nil
		}
	default:
		return 0, ErrUnknownKind
	}
}

// Features carries the recipe facets an interaction contributes to.
// Ingredients are truncated to the first five entries when applied.
type Features struct {
	Cuisine     string
	CookingTime int
	DietaryTags []string
	Ingredients []string
	HealthTags  []string
}

// FeaturesOf extracts interaction features from a recipe record.
func FeaturesOf(r *recipe.Recipe) Features {
	return Features{
		Cuisine:     r.Cuisine(),
		CookingTime: r.CookingTime(),
		DietaryTags: r.DietaryTags(),
		Ingredients: r.Ingredients(),
		HealthTags:  r.HealthTags(),
	}
}

// Cooking-time bucket boundaries, in minutes.
const (
	quickTimeLimit  = 20
	mediumTimeLimit = 45
)

// Bucket names for cooking-time preferences.
const (
	TimeBucketQuick  = "quick"
	TimeBucketMedium = "medium"
	TimeBucketLong   = "long"
)

// TimeBucket categorizes a cooking time into quick, medium or long.
func TimeBucket(minutes int) string {
	switch {
	case minutes <= quickTimeLimit:
		return TimeBucketQuick
	case minutes <= mediumTimeLimit:
		return TimeBucketMedium
	default:
		return TimeBucketLong
	}
}

// Spice-level facet values.
const (
	SpiceLevelSpicy = "spicy"
	SpiceLevelMild  = "mild"
)

func spiceLevel(dietaryTags []string) string {
	for _, tag := range dietaryTags {
		if tag == SpiceLevelSpicy {
			return SpiceLevelSpicy
		}
	}
	return SpiceLevelMild
}
