package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/ports/inbound"
	apperrors "github.com/platewise/v1/pkg/errors"
)

// RecipeAPIHandlers handles catalog read requests
type RecipeAPIHandlers struct {
	service inbound.RecipeService
	logger  *zap.Logger
}

// NewRecipeAPIHandlers creates a new recipe handlers instance
func NewRecipeAPIHandlers(service inbound.RecipeService, logger *zap.Logger) *RecipeAPIHandlers {
	return &RecipeAPIHandlers{
		service: service,
		logger:  logger,
	}
}

// ListRecipes handles GET /api/v1/recipes
func (h *RecipeAPIHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	cuisine := r.URL.Query().Get("cuisine")

	recipes, err := h.service.ListRecipes(r.Context(), cuisine)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    recipes,
	})
}

// GetRecipe handles GET /api/v1/recipes/{id}
func (h *RecipeAPIHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewInvalidArgumentError("invalid recipe id"))
		return
	}

	recipe, err := h.service.GetRecipe(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    recipe,
	})
}

// HealthCheck handles GET /api/v1/health
func (h *RecipeAPIHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		},
	})
}
