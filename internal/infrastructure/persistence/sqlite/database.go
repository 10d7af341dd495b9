// Package sqlite provides SQLite database setup and seeding for local and
// single-node deployments.
package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormModels "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
)

// SetupDatabase creates and configures the SQLite database
func SetupDatabase(dbPath string, logLevel logger.LogLevel) (*gorm.DB, error) {
	// Use in-memory database if no path provided
	if dbPath == "" {
		dbPath = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration
	err = db.AutoMigrate(
		&gormModels.RecipeModel{},
		&gormModels.InteractionModel{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// SeedDatabase populates the catalog with starter recipes
func SeedDatabase(db *gorm.DB) error {
	// Check if data already exists
	var recipeCount int64
	db.Model(&gormModels.RecipeModel{}).Count(&recipeCount)
	if recipeCount > 0 {
		return nil // Already seeded
	}

	now := time.Now()
	seedRecipes := []gormModels.RecipeModel{
		{
			ID:      uuid.New(),
			Name:    "Greek Salad with Grilled Chicken",
			Cuisine: "mediterranean",
			Ingredients: gormModels.StringSlice{
				"chicken breast", "tomato", "cucumber", "feta cheese",
				"olive oil", "red onion", "oregano",
			},
			Instructions: gormModels.StringSlice{
				"Grill the chicken breast until cooked through",
				"Chop tomato, cucumber and onion into chunks",
				"Toss vegetables with olive oil and oregano",
				"Slice chicken and serve over the salad with feta",
			},
			CookingTimeMinutes: 20,
			Difficulty:         "easy",
			Servings:           2,
			Calories:           420,
			Protein:            38,
			Carbs:              14,
			Fat:                24,
			Fiber:              4,
			Sodium:             680,
			DietaryTags:        gormModels.StringSlice{"gluten-free", "high-protein"},
			HealthTags:         gormModels.StringSlice{"heart_health", "weight_loss"},
			Rating:             4.7,
			CreatedAt:          now,
		},
		{
			ID:      uuid.New(),
			Name:    "Spaghetti Carbonara",
			Cuisine: "italian",
			Ingredients: gormModels.StringSlice{
				"pasta", "eggs", "pancetta", "pecorino romano", "black pepper",
			},
			Instructions: gormModels.StringSlice{
				"Boil pasta in salted water until al dente",
				"Crisp the pancetta in a skillet",
				"Whisk eggs with grated cheese",
				"Toss drained pasta with pancetta and egg mixture off the heat",
			},
			CookingTimeMinutes: 25,
			Difficulty:         "medium",
			Servings:           4,
			Calories:           650,
			Protein:            26,
			Carbs:              72,
			Fat:                28,
			Fiber:              3,
			Sodium:             920,
			DietaryTags:        gormModels.StringSlice{},
			HealthTags:         gormModels.StringSlice{},
			Rating:             4.8,
			CreatedAt:          now.Add(time.Second),
		},
		{
			ID:      uuid.New(),
			Name:    "Thai Green Curry",
			Cuisine: "thai",
			Ingredients: gormModels.StringSlice{
				"chicken breast", "coconut milk", "green curry paste",
				"bell pepper", "bamboo shoots", "basil", "rice",
			},
			Instructions: gormModels.StringSlice{
				"Fry curry paste in oil until fragrant",
				"Add coconut milk and bring to a simmer",
				"Add chicken and vegetables, simmer until cooked",
				"Finish with basil and serve over rice",
			},
			CookingTimeMinutes: 35,
			Difficulty:         "medium",
			Servings:           4,
			Calories:           540,
			Protein:            32,
			Carbs:              48,
			Fat:                24,
			Fiber:              5,
			Sodium:             840,
			DietaryTags:        gormModels.StringSlice{"spicy", "gluten-free"},
			HealthTags:         gormModels.StringSlice{},
			Rating:             4.6,
			CreatedAt:          now.Add(2 * time.Second),
		},
		{
			ID:      uuid.New(),
			Name:    "Lentil Soup",
			Cuisine: "mediterranean",
			Ingredients: gormModels.StringSlice{
				"lentils", "carrot", "celery", "onion", "garlic",
				"olive oil", "cumin", "vegetable stock",
			},
			Instructions: gormModels.StringSlice{
				"Sweat onion, carrot and celery in olive oil",
				"Add garlic and cumin and cook one minute",
				"Add lentils and stock, simmer until tender",
				"Season and serve",
			},
			CookingTimeMinutes: 45,
			Difficulty:         "easy",
			Servings:           6,
			Calories:           310,
			Protein:            18,
			Carbs:              46,
			Fat:                7,
			Fiber:              16,
			Sodium:             540,
			DietaryTags:        gormModels.StringSlice{"vegan", "vegetarian", "high-fiber"},
			HealthTags:         gormModels.StringSlice{"heart_health", "diabetes"},
			Rating:             4.4,
			CreatedAt:          now.Add(3 * time.Second),
		},
		{
			ID:      uuid.New(),
			Name:    "Beef Tacos",
			Cuisine: "mexican",
			Ingredients: gormModels.StringSlice{
				"ground beef", "tortillas", "onion", "tomato",
				"cheese", "lettuce", "chili powder",
			},
			Instructions: gormModels.StringSlice{
				"Brown the beef with onion and chili powder",
				"Warm the tortillas",
				"Assemble tacos with beef and toppings",
			},
			CookingTimeMinutes: 18,
			Difficulty:         "easy",
			Servings:           4,
			Calories:           520,
			Protein:            28,
			Carbs:              38,
			Fat:                28,
			Fiber:              4,
			Sodium:             760,
			DietaryTags:        gormModels.StringSlice{"spicy"},
			HealthTags:         gormModels.StringSlice{},
			Rating:             4.5,
			CreatedAt:          now.Add(4 * time.Second),
		},
		{
			ID:      uuid.New(),
			Name:    "Vegetable Stir Fry",
			Cuisine: "chinese",
			Ingredients: gormModels.StringSlice{
				"broccoli", "bell pepper", "carrot", "mushroom",
				"garlic", "ginger", "soy sauce", "rice",
			},
			Instructions: gormModels.StringSlice{
				"Heat a wok until smoking",
				"Stir fry vegetables with garlic and ginger",
				"Add soy sauce and toss",
				"Serve over steamed rice",
			},
			CookingTimeMinutes: 15,
			Difficulty:         "easy",
			Servings:           2,
			Calories:           380,
			Protein:            11,
			Carbs:              62,
			Fat:                10,
			Fiber:              8,
			Sodium:             890,
			DietaryTags:        gormModels.StringSlice{"vegan", "vegetarian"},
			HealthTags:         gormModels.StringSlice{"weight_loss"},
			Rating:             4.2,
			CreatedAt:          now.Add(5 * time.Second),
		},
		{
			ID:      uuid.New(),
			Name:    "Baked Salmon with Quinoa",
			Cuisine: "american",
			Ingredients: gormModels.StringSlice{
				"salmon", "quinoa", "lemon", "olive oil",
				"asparagus", "garlic",
			},
			Instructions: gormModels.StringSlice{
				"Roast salmon and asparagus with olive oil and lemon",
				"Cook quinoa in salted water",
				"Plate salmon over quinoa",
			},
			CookingTimeMinutes: 30,
			Difficulty:         "easy",
			Servings:           2,
			Calories:           560,
			Protein:            42,
			Carbs:              44,
			Fat:                24,
			Fiber:              7,
			Sodium:             380,
			DietaryTags:        gormModels.StringSlice{"gluten-free", "high-protein"},
			HealthTags:         gormModels.StringSlice{"heart_health"},
			Rating:             4.9,
			CreatedAt:          now.Add(6 * time.Second),
		},
		{
			ID:      uuid.New(),
			Name:    "Chicken Tikka Masala",
			Cuisine: "indian",
			Ingredients: gormModels.StringSlice{
				"chicken breast", "yogurt", "tomato", "cream",
				"garam masala", "garlic", "ginger", "rice",
			},
			Instructions: gormModels.StringSlice{
				"Marinate chicken in spiced yogurt",
				"Grill the chicken pieces",
				"Simmer in a spiced tomato cream sauce",
				"Serve with rice",
			},
			CookingTimeMinutes: 50,
			Difficulty:         "hard",
			Servings:           4,
			Calories:           620,
			Protein:            36,
			Carbs:              52,
			Fat:                30,
			Fiber:              4,
			Sodium:             980,
			DietaryTags:        gormModels.StringSlice{"spicy"},
			HealthTags:         gormModels.StringSlice{},
			Rating:             4.7,
			CreatedAt:          now.Add(7 * time.Second),
		},
	}

	for _, rec := range seedRecipes {
		if err := db.Create(&rec).Error; err != nil {
			return fmt.Errorf("failed to create seed recipe: %w", err)
		}
	}

	return nil
}
