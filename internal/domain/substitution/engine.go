// Package substitution suggests ingredient replacements honoring dietary
// restrictions, health goals and budget constraints, backed by a curated
// rule table with a category-based fallback for unknown ingredients.
package substitution

import (
	"fmt"
	"sort"
	"strings"
)

// Category is a broad ingredient group used for generic fallbacks.
type Category string

const (
	CategoryProtein   Category = "protein"
	CategoryVegetable Category = "vegetable"
	CategoryHerb      Category = "herb"
	CategorySpice     Category = "spice"
	CategoryGrain     Category = "grain"
	CategoryFruit     Category = "fruit"
	CategoryOther     Category = "other"
)

// Suggestion is the result of a substitution lookup.
type Suggestion struct {
	Original       string   `json:"original"`
	Alternatives   []string `json:"alternatives"`
	Ratio          float64  `json:"ratio"`
	Notes          []string `json:"notes"`
	NutritionNotes string   `json:"nutritional_notes"`
}

// Query narrows a lookup to the caller's requirements.
type Query struct {
	DietaryRestrictions []string
	HealthGoals         []string
	BudgetConscious     bool
}

// Engine resolves ingredient substitutions from the rule table.
type Engine struct {
	rules map[string]Rule
	// Rule keys in matching order: longest first, so compound names
	// resolve to their most specific rule ("buttermilk" hits "butter",
	// not "milk"), and alphabetical among equal lengths.
	keys []string
}

// NewEngine creates an engine with the default rule table.
func NewEngine() *Engine {
	rules := defaultRules()
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return &Engine{rules: rules, keys: keys}
}

// Find returns substitution suggestions for an ingredient. Matching is
// case-insensitive and tolerant of partial names in either direction
// ("fresh milk" matches the "milk" rule).
func (e *Engine) Find(ingredient string, q Query) Suggestion {
	normalized := strings.ToLower(strings.TrimSpace(ingredient))

	var rule Rule
	var found bool
	for _, key := range e.keys {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			rule = e.rules[key]
			found = true
			break
		}
	}

	if !found {
		return e.genericSuggestion(ingredient)
	}

	s := Suggestion{
		Original: ingredient,
		Ratio:    rule.Ratio,
	}

	for _, restriction := range q.DietaryRestrictions {
		key := normalizeKey(restriction)
		if alts, ok := rule.Variants[key]; ok {
			s.Alternatives = append(s.Alternatives, alts...)
			s.Notes = append(s.Notes, fmt.Sprintf("Suitable for %s diet", humanizeKey(key)))
		}
	}

	for _, goal := range q.HealthGoals {
		key := normalizeKey(goal)
		if alts, ok := rule.Variants[key]; ok {
			s.Alternatives = append(s.Alternatives, alts...)
			s.Notes = append(s.Notes, fmt.Sprintf("Optimized for %s", goal))
		}
	}

	if q.BudgetConscious {
		if alts, ok := rule.Variants[VariantBudget]; ok {
			s.Alternatives = append(s.Alternatives, alts...)
			s.Notes = append(s.Notes, "Budget-friendly options included")
		}
	}

	if len(s.Alternatives) == 0 {
		s.Alternatives = rule.Alternatives
	}

	s.Alternatives = dedupe(s.Alternatives)
	if len(s.Alternatives) > 5 {
		s.Alternatives = s.Alternatives[:5]
	}

	s.NutritionNotes = nutritionComparison(s.Alternatives)

	return s
}

// Batch resolves substitutions for multiple ingredients.
func (e *Engine) Batch(ingredients []string, q Query) map[string]Suggestion {
	results := make(map[string]Suggestion, len(ingredients))
	for _, ing := range ingredients {
		results[ing] = e.Find(ing, q)
	}
	return results
}

func (e *Engine) genericSuggestion(ingredient string) Suggestion {
	category := Categorize(ingredient)

	alternatives, ok := genericAlternatives[category]
	if !ok {
		alternatives = []string{"consult recipe notes"}
	}

	return Suggestion{
		Original:       ingredient,
		Alternatives:   alternatives,
		Ratio:          1.0,
		Notes:          []string{fmt.Sprintf("Generic %s substitutions suggested", category)},
		NutritionNotes: "Nutritional values may vary significantly",
	}
}

var categoryKeywords = map[Category][]string{
	CategoryProtein:   {"chicken", "beef", "pork", "fish", "tofu", "beans", "lentils"},
	CategoryVegetable: {"broccoli", "carrot", "onion", "pepper", "tomato", "spinach"},
	CategoryHerb:      {"basil", "oregano", "thyme", "parsley", "cilantro", "mint"},
	CategorySpice:     {"cumin", "paprika", "turmeric", "cinnamon", "ginger"},
	CategoryGrain:     {"rice", "quinoa", "pasta", "bread", "oats"},
	CategoryFruit:     {"apple", "banana", "berries", "citrus", "mango"},
}

// Order matters: proteins win over vegetables for compounds like
// "chicken and peppers".
var categoryOrder = []Category{
	CategoryProtein, CategoryVegetable, CategoryHerb,
	CategorySpice, CategoryGrain, CategoryFruit,
}

// Categorize places an ingredient into a broad group by keyword.
func Categorize(ingredient string) Category {
	lower := strings.ToLower(ingredient)
	for _, category := range categoryOrder {
		for _, kw := range categoryKeywords[category] {
			if strings.Contains(lower, kw) {
				return category
			}
		}
	}
	return CategoryOther
}

func nutritionComparison(alternatives []string) string {
	limit := len(alternatives)
	if limit > 3 {
		limit = 3
	}

	var notes []string
	for _, alt := range alternatives[:limit] {
		if note, ok := nutritionNotes[strings.ToLower(alt)]; ok {
			notes = append(notes, fmt.Sprintf("%s: %s", alt, note))
		}
	}

	if len(notes) == 0 {
		return "Nutritional values may vary"
	}
	return strings.Join(notes, "; ")
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.ReplaceAll(s, " ", "_")
}

func humanizeKey(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
