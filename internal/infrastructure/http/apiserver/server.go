// Package apiserver provides the JSON API HTTP server.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
)

// APIServer represents the JSON API HTTP server
type APIServer struct {
	config                *config.Config
	logger                *zap.Logger
	server                *http.Server
	router                *chi.Mux
	recommendationService inbound.RecommendationService
	recipeService         inbound.RecipeService
	kitchenService        inbound.KitchenService
	registry              *prometheus.Registry
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	recommendationService inbound.RecommendationService,
	recipeService inbound.RecipeService,
	kitchenService inbound.KitchenService,
	registry *prometheus.Registry,
) *APIServer {
	server := &APIServer{
		config:                cfg,
		logger:                log,
		recommendationService: recommendationService,
		recipeService:         recipeService,
		kitchenService:        kitchenService,
		registry:              registry,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(middleware.JSONOnly())

	// Operational endpoints
	r.Get("/health", s.handleHealthCheck)
	r.Method("GET", "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	recH := handlers.NewRecommendationAPIHandlers(s.recommendationService, s.logger)
	recipeH := handlers.NewRecipeAPIHandlers(s.recipeService, s.logger)
	kitchenH := handlers.NewKitchenAPIHandlers(s.kitchenService, s.logger)

	// Interaction recording
	r.Post("/interactions", recH.RecordInteraction)

	// Per-user personalization
	r.Route("/users/{userID}", func(r chi.Router) {
		r.Get("/recommendations", recH.GetRecommendations)
		r.Get("/recommendations/{recipeID}/explanation", recH.ExplainRecommendation)
		r.Get("/preferences", recH.GetPreferenceSummary)
		r.Get("/interactions", recH.GetInteractionHistory)
	})

	// Catalog
	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipeH.ListRecipes)
		r.Get("/{id}", recipeH.GetRecipe)
		r.Get("/{id}/nutrition", kitchenH.AnalyzeRecipe)
	})

	// Kitchen tools
	r.Route("/kitchen", func(r chi.Router) {
		r.Post("/substitutes", kitchenH.FindSubstitutes)
		r.Post("/nutrition-targets", kitchenH.NutritionTargets)
		r.Post("/scan", kitchenH.ScanImage)
	})

	// Health check
	r.Get("/health", recipeH.HealthCheck)
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr),
	)

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

// handleHealthCheck provides the liveness endpoint
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","service":%q,"version":%q}`,
		s.config.App.Name, s.config.App.Version)
}
