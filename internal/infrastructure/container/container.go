// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/platewise/v1/internal/application/catalog"
	"github.com/platewise/v1/internal/application/kitchen"
	"github.com/platewise/v1/internal/application/recommendation"
	"github.com/platewise/v1/internal/infrastructure/ai/caption"
	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/apiserver"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	gormRepo "github.com/platewise/v1/internal/infrastructure/persistence/gorm"
	"github.com/platewise/v1/internal/infrastructure/persistence/memory"
	"github.com/platewise/v1/internal/infrastructure/persistence/postgres"
	redisRepo "github.com/platewise/v1/internal/infrastructure/persistence/redis"
	"github.com/platewise/v1/internal/infrastructure/persistence/sqlite"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/internal/ports/outbound"
	"github.com/platewise/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	MonitoringModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the relational database connection. The
// returned handle is nil when the memory driver is configured.
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		switch cfg.Database.Driver {
		case "sqlite":
			db, err := sqlite.SetupDatabase(cfg.Database.Path, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}
			if cfg.Database.Seed {
				if err := sqlite.SeedDatabase(db); err != nil {
					log.Warn("Failed to seed database", zap.Error(err))
				}
			}
			log.Info("Connected to SQLite database",
				zap.String("path", cfg.Database.Path),
				zap.Bool("in_memory", cfg.Database.Path == ""),
			)
			return db, nil

		case "postgres":
			db, err := postgres.SetupDatabase(cfg.GetDSN(), logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup PostgreSQL database: %w", err)
			}
			log.Info("Connected to PostgreSQL database",
				zap.String("host", cfg.Database.Host),
				zap.String("database", cfg.Database.Database),
			)
			return db, nil

		default:
			log.Info("Using in-memory persistence")
			return nil, nil
		}
	},
)

// CacheModule provides the cache repository, Redis-backed when enabled.
var CacheModule = fx.Options(
	fx.Provide(
		func(cfg *config.Config, log *zap.Logger) (*goredis.Client, error) {
			if !cfg.Redis.Enabled {
				return nil, nil
			}
			return redisRepo.NewClient(context.Background(), cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.Database)
		},
	),
	fx.Provide(
		func(cfg *config.Config, client *goredis.Client, log *zap.Logger) outbound.CacheRepository {
			if cfg.Redis.Enabled && client != nil {
				log.Info("Using Redis cache", zap.String("addr", cfg.RedisAddr()))
				return redisRepo.NewCacheRepository(client, log)
			}
			log.Info("Using in-memory cache")
			return memory.NewCacheRepository()
		},
	),
)

// MonitoringModule provides the Prometheus registry and metrics
var MonitoringModule = fx.Provide(
	func() *prometheus.Registry {
		registry := prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		return registry
	},
	func(registry *prometheus.Registry) *monitoring.Metrics {
		return monitoring.NewMetrics(registry)
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	// Recipe repository
	func(cfg *config.Config, db *gorm.DB) outbound.RecipeRepository {
		if db != nil {
			return gormRepo.NewRecipeRepository(db)
		}
		return memory.NewRecipeRepository()
	},

	// Interaction event log
	func(cfg *config.Config, db *gorm.DB) outbound.InteractionStore {
		if db != nil {
			return gormRepo.NewInteractionStore(db)
		}
		return memory.NewInteractionStore()
	},

	// Profile store is always in-process; the startup hook rebuilds
	// profiles from the interaction log.
	func() outbound.ProfileStore {
		return memory.NewProfileStore()
	},

	// Caption service
	func(cfg *config.Config, log *zap.Logger) outbound.CaptionService {
		return caption.NewClient(caption.Config{
			BaseURL: cfg.Caption.BaseURL,
			Model:   cfg.Caption.Model,
			Timeout: cfg.Caption.Timeout,
		}, log)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		cfg *config.Config,
		profiles outbound.ProfileStore,
		recipes outbound.RecipeRepository,
		interactions outbound.InteractionStore,
		cache outbound.CacheRepository,
		metrics *monitoring.Metrics,
		log *zap.Logger,
	) inbound.RecommendationService {
		return recommendation.NewService(profiles, recipes, interactions, cache,
			cfg.Cache.RecommendationTTL, metrics, log)
	},
	catalog.NewService,
	kitchen.NewService,
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	apiserver.NewAPIServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	redisClient *goredis.Client,
	recommendations inbound.RecommendationService,
	server *apiserver.APIServer,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting PlateWise application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			// Replay the durable event log before serving traffic so
			// personalization survives restarts.
			if err := recommendations.RebuildProfiles(ctx); err != nil {
				return fmt.Errorf("failed to rebuild preference profiles: %w", err)
			}

			go func() {
				if err := server.Start(); err != nil && err != http.ErrServerClosed {
					log.Error("HTTP server stopped", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down PlateWise application")

			if err := server.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			if db != nil {
				sqlDB, err := db.DB()
				if err == nil {
					if err := sqlDB.Close(); err != nil {
						log.Error("Failed to close database connection", zap.Error(err))
					}
				}
			}

			if redisClient != nil {
				if err := redisClient.Close(); err != nil {
					log.Error("Failed to close Redis connection", zap.Error(err))
				}
			}

			// Flush logs
			_ = log.Sync()

			return nil
		},
	})
}
