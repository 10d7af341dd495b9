package recipe

import "errors"

// Domain errors for recipe validation
var (
	ErrEmptyName          = errors.New("recipe name is required")
	ErrInvalidCookingTime = errors.New("cooking time cannot be negative")
	ErrInvalidServings    = errors.New("servings must be positive")
	ErrInvalidDifficulty  = errors.New("unknown difficulty level")
	ErrEmptyIngredient    = errors.New("ingredient name cannot be empty")
)
