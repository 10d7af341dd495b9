// Package vision turns opaque image captions into ingredient lists and
// recipe matches. The captioning model itself lives behind an outbound
// port; this package only does keyword extraction over its text output.
package vision

import (
	"regexp"
	"sort"
	"strings"

	"github.com/platewise/v1/internal/domain/recipe"
)

// IngredientCategory groups recognized ingredient keywords.
type IngredientCategory string

const (
	CategoryVegetables  IngredientCategory = "vegetables"
	CategoryFruits      IngredientCategory = "fruits"
	CategoryProteins    IngredientCategory = "proteins"
	CategoryGrains      IngredientCategory = "grains"
	CategoryDairy       IngredientCategory = "dairy"
	CategoryHerbsSpices IngredientCategory = "herbs_spices"
)

var ingredientKeywords = map[IngredientCategory][]string{
	CategoryVegetables: {
		"tomato", "tomatoes", "onion", "onions", "carrot", "carrots",
		"broccoli", "spinach", "lettuce", "bell pepper", "peppers",
		"cucumber", "zucchini", "eggplant", "potato", "potatoes",
		"garlic", "ginger", "mushroom", "mushrooms", "avocado",
		"corn", "peas", "beans", "celery", "cauliflower",
	},
	CategoryFruits: {
		"apple", "apples", "banana", "bananas", "orange", "oranges",
		"lemon", "lemons", "lime", "limes", "strawberry", "strawberries",
		"blueberry", "blueberries", "grape", "grapes", "pineapple",
		"mango", "kiwi", "peach", "pear", "cherry", "cherries",
	},
	CategoryProteins: {
		"chicken", "beef", "pork", "fish", "salmon", "tuna",
		"shrimp", "eggs", "tofu", "beans", "lentils", "chickpeas",
		"turkey", "lamb", "bacon", "ham", "cheese", "nuts",
	},
	CategoryGrains: {
		"rice", "pasta", "bread", "quinoa", "oats", "barley",
		"wheat", "flour", "cereal", "noodles", "couscous",
	},
	CategoryDairy: {
		"milk", "cheese", "yogurt", "butter", "cream", "ice cream",
	},
	CategoryHerbsSpices: {
		"basil", "oregano", "thyme", "rosemary", "parsley", "cilantro",
		"mint", "sage", "cinnamon", "pepper", "salt", "cumin",
		"paprika", "turmeric", "ginger", "garlic",
	},
}

// Deterministic iteration order over keyword categories.
var categoryOrder = []IngredientCategory{
	CategoryVegetables, CategoryFruits, CategoryProteins,
	CategoryGrains, CategoryDairy, CategoryHerbsSpices,
}

// Extractor identifies ingredients in caption text.
type Extractor struct {
	patterns map[string]*regexp.Regexp
}

// NewExtractor compiles the keyword patterns once.
func NewExtractor() *Extractor {
	patterns := make(map[string]*regexp.Regexp)
	for _, category := range categoryOrder {
		for _, kw := range ingredientKeywords[category] {
			if _, ok := patterns[kw]; ok {
				continue
			}
			// Word boundaries prevent partial matches ("corn" in "cornice").
			patterns[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
	return &Extractor{patterns: patterns}
}

// ExtractIngredients returns the recognized ingredient keywords found in
// the caption, deduplicated, in keyword-table order.
func (e *Extractor) ExtractIngredients(caption string) []string {
	lower := strings.ToLower(caption)

	var found []string
	seen := make(map[string]struct{})
	for _, category := range categoryOrder {
		for _, kw := range ingredientKeywords[category] {
			if _, ok := seen[kw]; ok {
				continue
			}
			if e.patterns[kw].MatchString(lower) {
				seen[kw] = struct{}{}
				found = append(found, kw)
			}
		}
	}
	return found
}

// Categorize groups identified ingredients by keyword category. An
// ingredient lands in the first category that lists it.
func (e *Extractor) Categorize(ingredients []string) map[IngredientCategory][]string {
	categorized := make(map[IngredientCategory][]string)

	for _, ing := range ingredients {
		lower := strings.ToLower(ing)
		for _, category := range categoryOrder {
			if containsFold(ingredientKeywords[category], lower) {
				categorized[category] = append(categorized[category], ing)
				break
			}
		}
	}
	return categorized
}

var methodKeywords = map[string][]string{
	"Stir Fry": {"vegetables", "bell pepper", "broccoli", "carrot"},
	"Salad":    {"lettuce", "cucumber", "tomato", "avocado"},
	"Soup":     {"onion", "carrot", "celery", "broth"},
	"Pasta":    {"pasta", "noodles", "tomato", "cheese"},
	"Grilling": {"chicken", "beef", "fish", "vegetables"},
	"Baking":   {"chicken", "fish", "potato", "vegetables"},
	"Steaming": {"broccoli", "cauliflower", "fish", "vegetables"},
	"Roasting": {"potato", "carrot", "chicken", "beef"},
}

// SuggestMethods proposes cooking methods suited to the ingredients,
// sorted alphabetically for deterministic output.
func (e *Extractor) SuggestMethods(ingredients []string) []string {
	set := make(map[string]struct{}, len(ingredients))
	for _, ing := range ingredients {
		set[strings.ToLower(ing)] = struct{}{}
	}

	var methods []string
	for method, keywords := range methodKeywords {
		for _, kw := range keywords {
			if _, ok := set[kw]; ok {
				methods = append(methods, method)
				break
			}
		}
	}
	sort.Strings(methods)
	return methods
}

// EstimateServings guesses a serving count from ingredient count and
// quantity words in the caption, capped to [1, 6].
func (e *Extractor) EstimateServings(ingredients []string, caption string) int {
	servings := 1
	switch n := len(ingredients); {
	case n > 12:
		servings = 4
	case n > 8:
		servings = 3
	case n > 5:
		servings = 2
	}

	lower := strings.ToLower(caption)
	for _, word := range []string{"many", "several", "bunch", "lots", "multiple"} {
		if strings.Contains(lower, word) {
			servings++
			break
		}
	}

	if servings > 6 {
		servings = 6
	}
	return servings
}

// Match is a recipe matched against identified ingredients.
type Match struct {
	Recipe       *recipe.Recipe
	MatchPercent float64
	Overlap      []string
}

// Minimum share of a recipe's ingredients that must be identified for a
// match.
const minMatchPercent = 20.0

// MatchRecipes returns catalog recipes whose ingredient lists overlap the
// identified ingredients by more than minMatchPercent, best match first
// (stable for ties).
func (e *Extractor) MatchRecipes(identified []string, catalog []*recipe.Recipe) []Match {
	identifiedSet := make(map[string]struct{}, len(identified))
	for _, ing := range identified {
		identifiedSet[strings.ToLower(ing)] = struct{}{}
	}

	var matches []Match
	for _, r := range catalog {
		ingredients := r.Ingredients()
		if len(ingredients) == 0 {
			continue
		}

		var overlap []string
		for _, ing := range ingredients {
			if _, ok := identifiedSet[strings.ToLower(ing)]; ok {
				overlap = append(overlap, ing)
			}
		}

		percent := float64(len(overlap)) / float64(len(ingredients)) * 100
		if percent > minMatchPercent {
			matches = append(matches, Match{
				Recipe:       r,
				MatchPercent: percent,
				Overlap:      overlap,
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercent > matches[j].MatchPercent
	})
	return matches
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.ToLower(s) == needle {
			return true
		}
	}
	return false
}
