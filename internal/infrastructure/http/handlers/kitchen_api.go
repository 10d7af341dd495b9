package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/domain/nutrition"
	"github.com/platewise/v1/internal/ports/inbound"
	apperrors "github.com/platewise/v1/pkg/errors"
)

// maxImageBytes caps uploaded scan images at 10MB.
const maxImageBytes = 10 << 20

// KitchenAPIHandlers handles substitution, nutrition and scan requests
type KitchenAPIHandlers struct {
	service  inbound.KitchenService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewKitchenAPIHandlers creates a new kitchen handlers instance
func NewKitchenAPIHandlers(service inbound.KitchenService, logger *zap.Logger) *KitchenAPIHandlers {
	return &KitchenAPIHandlers{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// FindSubstitutes handles POST /api/v1/kitchen/substitutes
func (h *KitchenAPIHandlers) FindSubstitutes(w http.ResponseWriter, r *http.Request) {
	var query inbound.SubstituteQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		writeError(w, r, h.logger, apperrors.NewInvalidArgumentError("invalid request body"))
		return
	}

	if err := h.validate.Struct(query); err != nil {
		writeError(w, r, h.logger, apperrors.NewInvalidArgumentError(err.Error()))
		return
	}

	suggestion, err := h.service.FindSubstitutes(r.Context(), query)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    suggestion,
	})
}

// AnalyzeRecipe handles GET /api/v1/recipes/{id}/nutrition
func (h *KitchenAPIHandlers) AnalyzeRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewInvalidArgumentError("invalid recipe id"))
		return
	}

	group := nutrition.AudienceGroup(r.URL.Query().Get("group"))
	if group == "" {
		group = nutrition.GroupAdultMale
	}

	var healthGoals []string
	if raw := r.URL.Query().Get("health_goals"); raw != "" {
		healthGoals = strings.Split(raw, ",")
	}

	analysis, err := h.service.AnalyzeRecipe(r.Context(), id, group, healthGoals)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    analysis,
	})
}

// targetsRequest carries the inputs for daily target calculation.
type targetsRequest struct {
	AgeGroup            string            `json:"age_group"`
	HealthConditions    []string          `json:"health_conditions,omitempty"`
	DietaryRestrictions []string          `json:"dietary_restrictions,omitempty"`
	Overrides           nutrition.Targets `json:"overrides,omitempty"`
}

// NutritionTargets handles POST /api/v1/kitchen/nutrition-targets
func (h *KitchenAPIHandlers) NutritionTargets(w http.ResponseWriter, r *http.Request) {
	var req targetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, apperrors.NewInvalidArgumentError("invalid request body"))
		return
	}

	profile := nutrition.TargetProfile{
		AgeGroup:            nutrition.AgeGroup(req.AgeGroup),
		HealthConditions:    req.HealthConditions,
		DietaryRestrictions: req.DietaryRestrictions,
		Overrides:           req.Overrides,
	}
	if profile.AgeGroup == "" {
		profile.AgeGroup = nutrition.AgeGroupAdult
	}

	report := h.service.NutritionTargets(r.Context(), profile)

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    report,
	})
}

// ScanImage handles POST /api/v1/kitchen/scan
func (h *KitchenAPIHandlers) ScanImage(w http.ResponseWriter, r *http.Request) {
	image, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes))
	if err != nil {
		writeError(w, r, h.logger, apperrors.NewInvalidArgumentError("failed to read image body"))
		return
	}
	if len(image) == 0 {
		writeError(w, r, h.logger, apperrors.NewInvalidArgumentError("image body is required"))
		return
	}

	result, err := h.service.ScanImage(r.Context(), image)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, APIResponse{
		Success: true,
		Data:    result,
	})
}
