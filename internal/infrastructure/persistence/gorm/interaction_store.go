package gorm

import (
	"context"

	"gorm.io/gorm"

	"github.com/platewise/v1/internal/domain/preference"
	"github.com/platewise/v1/internal/ports/outbound"
)

// InteractionStore implements the append-only event log on a relational
// database.
type InteractionStore struct {
	db *gorm.DB
}

// NewInteractionStore creates a new GORM-backed interaction store.
func NewInteractionStore(db *gorm.DB) outbound.InteractionStore {
	return &InteractionStore{db: db}
}

// Append inserts an event row. Rows are never updated or deleted.
func (s *InteractionStore) Append(ctx context.Context, event preference.Interaction) error {
	model := InteractionModel{
		ID:         event.ID,
		UserID:     event.UserID,
		RecipeID:   event.RecipeID,
		Kind:       string(event.Kind),
		Rating:     event.Rating,
		OccurredAt: event.OccurredAt,
	}
	return s.db.WithContext(ctx).Create(&model).Error
}

// FindAll returns every event, oldest first.
func (s *InteractionStore) FindAll(ctx context.Context) ([]preference.Interaction, error) {
	var models []InteractionModel
	err := s.db.WithContext(ctx).
		Order("occurred_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	out := make([]preference.Interaction, len(models))
	for i, m := range models {
		out[i] = preference.Interaction{
			ID:         m.ID,
			UserID:     m.UserID,
			RecipeID:   m.RecipeID,
			Kind:       preference.Kind(m.Kind),
			Rating:     m.Rating,
			OccurredAt: m.OccurredAt,
		}
	}
	return out, nil
}

// FindByUser returns the user's most recent events, newest first.
func (s *InteractionStore) FindByUser(ctx context.Context, userID string, limit int) ([]preference.Interaction, error) {
	query := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []InteractionModel
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]preference.Interaction, len(models))
	for i, m := range models {
		out[i] = preference.Interaction{
			ID:         m.ID,
			UserID:     m.UserID,
			RecipeID:   m.RecipeID,
			Kind:       preference.Kind(m.Kind),
			Rating:     m.Rating,
			OccurredAt: m.OccurredAt,
		}
	}
	return out, nil
}

// CountByUser returns how many events the user has logged.
func (s *InteractionStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&InteractionModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
