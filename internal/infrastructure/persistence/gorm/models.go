// Package gorm provides GORM model definitions and repositories for the
// relational persistence layer.
package gorm

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecipeModel represents the GORM model for catalog recipes
type RecipeModel struct {
	ID      uuid.UUID `gorm:"type:char(36);primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null;index"`
	Cuisine string    `gorm:"type:varchar(50);index"`

	Ingredients  StringSlice `gorm:"type:json"`
	Instructions StringSlice `gorm:"type:json"`

	CookingTimeMinutes int    `gorm:"column:cooking_time_minutes;default:0"`
	Difficulty         string `gorm:"type:varchar(20);index"`
	Servings           int    `gorm:"default:1"`

	Calories int     `gorm:"default:0"`
	Protein  float64 `gorm:"default:0"`
	Carbs    float64 `gorm:"default:0"`
	Fat      float64 `gorm:"default:0"`
	Fiber    float64 `gorm:"default:0"`
	Sodium   float64 `gorm:"default:0"`

	DietaryTags StringSlice `gorm:"type:json"`
	HealthTags  StringSlice `gorm:"type:json"`

	Rating float64 `gorm:"column:external_rating;default:0;index"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName returns the table name for RecipeModel
func (RecipeModel) TableName() string {
	return "recipes"
}

// InteractionModel represents the GORM model for the interaction event log
type InteractionModel struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID     string    `gorm:"type:varchar(255);not null;index"`
	RecipeID   uuid.UUID `gorm:"type:char(36);not null;index"`
	Kind       string    `gorm:"type:varchar(20);not null"`
	Rating     *int      `gorm:"check:rating IS NULL OR (rating >= 1 AND rating <= 5)"`
	OccurredAt time.Time `gorm:"index"`
}

// TableName returns the table name for InteractionModel
func (InteractionModel) TableName() string {
	return "interactions"
}

// StringSlice is a custom type for JSON-serialized string slices
type StringSlice []string

// Scan implements sql.Scanner for StringSlice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}

	return json.Unmarshal(bytes, s)
}

// Value implements driver.Valuer for StringSlice
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}
