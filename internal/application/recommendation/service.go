// Package recommendation provides the application layer for the
// personalization use cases: recording interactions, ranking candidates
// and explaining recommendations.
package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/preference"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/errors"
)

const defaultRecommendationCacheTTL = 5 * time.Minute

// Service implements the recommendation use cases.
type Service struct {
	profiles     outbound.ProfileStore
	recipes      outbound.RecipeRepository
	interactions outbound.InteractionStore
	cache        outbound.CacheRepository
	cacheTTL     time.Duration
	metrics      *monitoring.Metrics
	logger       *zap.Logger
}

// NewService creates a new recommendation service. A non-positive
// cacheTTL falls back to the 5 minute default.
func NewService(
	profiles outbound.ProfileStore,
	recipes outbound.RecipeRepository,
	interactions outbound.InteractionStore,
	cache outbound.CacheRepository,
	cacheTTL time.Duration,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) inbound.RecommendationService {
	if cacheTTL <= 0 {
		cacheTTL = defaultRecommendationCacheTTL
	}
	return &Service{
		profiles:     profiles,
		recipes:      recipes,
		interactions: interactions,
		cache:        cache,
		cacheTTL:     cacheTTL,
		metrics:      metrics,
		logger:       logger.Named("recommendation-service"),
	}
}

// RecordInteraction validates and persists one interaction event, then
// folds its signed weight into the user's preference profile.
func (s *Service) RecordInteraction(ctx context.Context, cmd inbound.RecordInteractionCommand) error {
	s.logger.Info("Recording interaction",
		zap.String("user_id", cmd.UserID),
		zap.String("recipe_id", cmd.RecipeID.String()),
		zap.String("kind", string(cmd.Kind)),
	)

	event, err := preference.NewInteraction(cmd.UserID, cmd.RecipeID, cmd.Kind, cmd.Rating)
	if err != nil {
		return domainToAppError(err)
	}

	weight, err := event.Weight()
	if err != nil {
		return domainToAppError(err)
	}

	r, err := s.recipes.FindByID(ctx, cmd.RecipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe", err)
	}
	if r == nil {
		return errors.NewRecipeNotFoundError(cmd.RecipeID.String())
	}

	if err := s.interactions.Append(ctx, event); err != nil {
		return errors.NewDatabaseError("append interaction", err)
	}

	features := preference.FeaturesOf(r)
	if err := s.profiles.Update(ctx, cmd.UserID, func(p *preference.Profile) error {
		p.Apply(weight, features)
		return nil
	}); err != nil {
		return errors.NewDatabaseError("update profile", err)
	}

	// Ranked results for this user are stale now.
	s.cache.Delete(ctx, recommendationCacheKey(cmd.UserID))

	s.metrics.InteractionsRecorded.WithLabelValues(string(cmd.Kind)).Inc()

	return nil
}

// Recommend ranks the full catalog for the user and returns the top
// candidates. Users without a profile fall back to the external catalog
// rating, preserving input order on ties.
func (s *Service) Recommend(ctx context.Context, userID string, limit int) ([]inbound.RecommendationDTO, error) {
	if userID == "" {
		return nil, errors.NewInvalidArgumentError("user id is required")
	}
	if limit <= 0 {
		limit = 10
	}

	start := time.Now()
	defer func() {
		s.metrics.RecommendationSeconds.Observe(time.Since(start).Seconds())
		s.metrics.RecommendationsServed.Inc()
	}()

	if cached := s.cachedRecommendations(ctx, userID); cached != nil {
		s.metrics.CacheHits.Inc()
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}
	s.metrics.CacheMisses.Inc()

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load profile", err)
	}

	candidates, err := s.recipes.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("load candidates", err)
	}

	// Rank the full catalog once so the cached list serves any limit.
	ranked := preference.Rank(profile, candidates, 0)

	dtos := make([]inbound.RecommendationDTO, len(ranked))
	for i, sc := range ranked {
		dtos[i] = inbound.RecommendationDTO{
			Recipe: RecipeToDTO(sc.Recipe),
			Score:  sc.Score,
		}
	}

	s.cacheRecommendations(ctx, userID, dtos)

	s.logger.Debug("Ranked candidates",
		zap.String("user_id", userID),
		zap.Int("candidates", len(candidates)),
		zap.Bool("cold_start", profile == nil),
	)

	if len(dtos) > limit {
		dtos = dtos[:limit]
	}
	return dtos, nil
}

// Explain returns human-readable reasons the recipe suits the user.
// Unknown users get exactly the popularity fallback sentence.
func (s *Service) Explain(ctx context.Context, userID string, recipeID uuid.UUID) ([]string, error) {
	if userID == "" {
		return nil, errors.NewInvalidArgumentError("user id is required")
	}

	r, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if r == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load profile", err)
	}
	if profile == nil {
		return []string{preference.PopularExplanation}, nil
	}

	return profile.Explain(r), nil
}

// PreferenceSummary returns the user's strongest facet values. Unknown
// users get an empty summary, not an error.
func (s *Service) PreferenceSummary(ctx context.Context, userID string) (map[string]preference.FacetSummary, error) {
	if userID == "" {
		return nil, errors.NewInvalidArgumentError("user id is required")
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load profile", err)
	}
	if profile == nil {
		return map[string]preference.FacetSummary{}, nil
	}

	return profile.Summary(), nil
}

// InteractionHistory returns the user's most recent events, newest
// first, along with the total event count.
func (s *Service) InteractionHistory(ctx context.Context, userID string, limit int) (inbound.InteractionHistoryDTO, error) {
	if userID == "" {
		return inbound.InteractionHistoryDTO{}, errors.NewInvalidArgumentError("user id is required")
	}
	if limit <= 0 {
		limit = 20
	}

	events, err := s.interactions.FindByUser(ctx, userID, limit)
	if err != nil {
		return inbound.InteractionHistoryDTO{}, errors.NewDatabaseError("load interactions", err)
	}
	total, err := s.interactions.CountByUser(ctx, userID)
	if err != nil {
		return inbound.InteractionHistoryDTO{}, errors.NewDatabaseError("count interactions", err)
	}

	history := inbound.InteractionHistoryDTO{
		Total:  total,
		Events: make([]inbound.InteractionDTO, len(events)),
	}
	for i, e := range events {
		history.Events[i] = inbound.InteractionDTO{
			ID:         e.ID,
			RecipeID:   e.RecipeID,
			Kind:       string(e.Kind),
			Rating:     e.Rating,
			OccurredAt: e.OccurredAt,
		}
	}
	return history, nil
}

// RebuildProfiles replays the persisted interaction log into the profile
// store, oldest event first. Runs at startup so profiles survive
// restarts whenever the event log is durable. Events for recipes that
// left the catalog are skipped.
func (s *Service) RebuildProfiles(ctx context.Context) error {
	events, err := s.interactions.FindAll(ctx)
	if err != nil {
		return errors.NewDatabaseError("load interaction log", err)
	}
	if len(events) == 0 {
		return nil
	}

	recipes := make(map[uuid.UUID]*recipe.Recipe)
	users := make(map[string]struct{})
	replayed := 0
	for _, event := range events {
		weight, err := event.Weight()
		if err != nil {
			continue
		}

		r, seen := recipes[event.RecipeID]
		if !seen {
			r, err = s.recipes.FindByID(ctx, event.RecipeID)
			if err != nil {
				return errors.NewDatabaseError("find recipe", err)
			}
			recipes[event.RecipeID] = r
		}
		if r == nil {
			continue
		}

		features := preference.FeaturesOf(r)
		if err := s.profiles.Update(ctx, event.UserID, func(p *preference.Profile) error {
			p.Apply(weight, features)
			return nil
		}); err != nil {
			return errors.NewDatabaseError("update profile", err)
		}
		users[event.UserID] = struct{}{}
		replayed++
	}

	// Rankings cached before the restart are stale against the rebuilt
	// profiles.
	for userID := range users {
		s.cache.Delete(ctx, recommendationCacheKey(userID))
	}

	s.logger.Info("Rebuilt preference profiles from interaction log",
		zap.Int("events", len(events)),
		zap.Int("replayed", replayed),
	)
	return nil
}

// RecipeToDTO converts a recipe entity to its transport representation.
func RecipeToDTO(r *recipe.Recipe) inbound.RecipeDTO {
	n := r.Nutrition()
	return inbound.RecipeDTO{
		ID:           r.ID(),
		Name:         r.Name(),
		Cuisine:      r.Cuisine(),
		Ingredients:  r.Ingredients(),
		Instructions: r.Instructions(),
		CookingTime:  r.CookingTime(),
		Difficulty:   string(r.Difficulty()),
		Servings:     r.Servings(),
		Nutrition: inbound.NutritionDTO{
			Calories: n.Calories,
			Protein:  n.Protein,
			Carbs:    n.Carbs,
			Fat:      n.Fat,
			Fiber:    n.Fiber,
			Sodium:   n.Sodium,
		},
		DietaryTags: r.DietaryTags(),
		HealthTags:  r.HealthTags(),
		Rating:      r.Rating(),
	}
}

func (s *Service) cachedRecommendations(ctx context.Context, userID string) []inbound.RecommendationDTO {
	data, err := s.cache.Get(ctx, recommendationCacheKey(userID))
	if err != nil || data == nil {
		return nil
	}

	var dtos []inbound.RecommendationDTO
	if err := json.Unmarshal(data, &dtos); err != nil {
		return nil
	}
	return dtos
}

func (s *Service) cacheRecommendations(ctx context.Context, userID string, dtos []inbound.RecommendationDTO) {
	data, err := json.Marshal(dtos)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, recommendationCacheKey(userID), data, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to cache recommendations",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func recommendationCacheKey(userID string) string {
	return fmt.Sprintf("recommendations:%s", userID)
}

func domainToAppError(err error) error {
	switch err {
	case preference.ErrMissingRating:
		return errors.NewMissingRatingError()
	case preference.ErrUnknownKind:
		return errors.NewUnknownKindError("")
	case preference.ErrEmptyUserID, preference.ErrRatingOutOfRange:
		return errors.NewInvalidArgumentError(err.Error())
	default:
		return errors.Wrap(err, "invalid interaction")
	}
}
