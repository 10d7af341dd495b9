package preference

import (
	"sort"

	"github.com/platewise/v1/internal/domain/recipe"
)

// Scored pairs a recipe with its request-scoped recommendation score.
// The record itself is never mutated.
type Scored struct {
	Recipe *recipe.Recipe
	Score  float64
}

// Rank scores every candidate against the profile and returns them in
// descending score order, truncated to limit. The sort is stable: equal
// scores preserve the candidates' input order.
//
// A nil profile means an unknown user; candidates then fall back to the
// external catalog rating, and input order where ratings are absent or
// equal.
func Rank(p *Profile, candidates []*recipe.Recipe, limit int) []Scored {
	scored := make([]Scored, len(candidates))

	if p == nil {
		for i, r := range candidates {
			scored[i] = Scored{Recipe: r, Score: r.Rating()}
		}
	} else {
		for i, r := range candidates {
			scored[i] = Scored{Recipe: r, Score: p.Score(r)}
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
