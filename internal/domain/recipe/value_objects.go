package recipe

// Value objects describing aspects of a recipe.

// Nutrition contains per-serving nutrition facts.
type Nutrition struct {
	Calories int
	Protein  float64 // in grams
	Carbs    float64 // in grams
	Fat      float64 // in grams
	Fiber    float64 // in grams
	Sodium   float64 // in milligrams
}

// Difficulty represents recipe difficulty
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether the difficulty is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
