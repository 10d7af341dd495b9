package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/ports/inbound"
	apperrors "github.com/platewise/v1/pkg/errors"
)

// RecommendationAPIHandlers handles interaction and recommendation requests
type RecommendationAPIHandlers struct {
	service  inbound.RecommendationService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRecommendationAPIHandlers creates a new recommendation handlers instance
func NewRecommendationAPIHandlers(service inbound.RecommendationService, logger *zap.Logger) *RecommendationAPIHandlers {
	return &RecommendationAPIHandlers{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RecordInteraction handles POST /api/v1/interactions
func (h *RecommendationAPIHandlers) RecordInteraction(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.RecordInteractionCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, r, h.logger, apperrors.NewInvalidArgumentError("invalid request body"))
		return
	}

	if err := h.validate.Struct(cmd); err != nil {
		writeError(w, r, h.logger, apperrors.NewInvalidArgumentError(err.Error()))
		return
	}

	if err := h.service.RecordInteraction(r.Context(), cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, APIResponse{
		Success: true,
		Message: "Interaction recorded successfully",
	})
}

// GetRecommendations handles GET /api/v1/users/{userID}/recommendations
func (h *RecommendationAPIHandlers) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, r, h.logger, apperrors.NewInvalidArgumentError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	recommendations, err := h.service.Recommend(r.Context(), userID, limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    recommendations,
	})
}

// ExplainRecommendation handles GET /api/v1/users/{userID}/recommendations/{recipeID}/explanation
func (h *RecommendationAPIHandlers) ExplainRecommendation(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	recipeID, err := uuid.Parse(chi.URLParam(r, "recipeID"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewInvalidArgumentError("invalid recipe id"))
		return
	}

	reasons, err := h.service.Explain(r.Context(), userID, recipeID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"recipe_id": recipeID,
			"reasons":   reasons,
		},
	})
}

// GetInteractionHistory handles GET /api/v1/users/{userID}/interactions
func (h *RecommendationAPIHandlers) GetInteractionHistory(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, r, h.logger, apperrors.NewInvalidArgumentError("limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}

	history, err := h.service.InteractionHistory(r.Context(), userID, limit)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    history,
	})
}

// GetPreferenceSummary handles GET /api/v1/users/{userID}/preferences
func (h *RecommendationAPIHandlers) GetPreferenceSummary(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	summary, err := h.service.PreferenceSummary(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    summary,
	})
}
