// Package main provides the entry point for the Mood Recipe API service
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/moodrecipe/api/internal/application/auth"
	reciperesolver "github.com/moodrecipe/api/internal/application/recipe"
	"github.com/moodrecipe/api/internal/infrastructure/config"
	"github.com/moodrecipe/api/internal/infrastructure/http/server"
	"github.com/moodrecipe/api/internal/infrastructure/monitoring"
	gormrepo "github.com/moodrecipe/api/internal/infrastructure/persistence/gorm"
	"github.com/moodrecipe/api/internal/infrastructure/persistence/sqlite"
	"github.com/moodrecipe/api/internal/infrastructure/session"
	"github.com/moodrecipe/api/internal/ports/outbound"
	"github.com/moodrecipe/api/pkg/healthcheck"
	"github.com/moodrecipe/api/pkg/logger"
)

func main() {
	app := fx.New(
		fx.NopLogger,

		fx.Provide(func() (*config.Config, error) {
			return config.Load("")
		}),

		fx.Provide(func(cfg *config.Config) (*zap.Logger, error) {
			return logger.New(logger.Config{
				Level:       cfg.App.LogLevel,
				Format:      cfg.App.LogFormat,
				Development: cfg.App.Debug,
			})
		}),

		fx.Provide(newDatabase),
		fx.Provide(newSessionStore),
		fx.Provide(gormrepo.NewUserRepository),
		fx.Provide(gormrepo.NewRecipeRepository),

		fx.Provide(func(cfg *config.Config) auth.PasswordHasher {
			return auth.NewBcryptHasher(cfg.Auth.BCryptCost)
		}),
		fx.Provide(auth.NewService),
		fx.Provide(reciperesolver.NewService),

		fx.Provide(monitoring.NewHTTPMetrics),
		fx.Provide(newHealthCheck),
		fx.Provide(server.NewServer),

		fx.Invoke(seedDatabase),
		fx.Invoke(registerLifecycleHooks),
	)

	app.Run()
}

func newDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	db, err := sqlite.SetupDatabase(cfg.Database.Path, sqlite.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}

	log.Info("Database ready", zap.String("path", cfg.Database.Path))
	return db, nil
}

func seedDatabase(cfg *config.Config, log *zap.Logger, db *gorm.DB) error {
	if !cfg.Database.Seed {
		return nil
	}
	if err := sqlite.SeedDatabase(db, cfg.Auth.BCryptCost); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}
	log.Info("Database seeded")
	return nil
}

func newSessionStore(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) session.Store {
	if !cfg.Redis.Enabled {
		log.Info("Using in-memory session store")
		store := session.NewMemoryStore(cfg.Session.Lifetime)
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				store.Close()
				return nil
			},
		})
		return store
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
	})

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	log.Info("Using Redis session store", zap.String("addr", cfg.RedisAddr()))
	return session.NewRedisStore(client, cfg.Session.Lifetime)
}

func newHealthCheck(cfg *config.Config, log *zap.Logger, db *gorm.DB, recipes outbound.RecipeRepository) *healthcheck.HealthCheck {
	hc := healthcheck.New(cfg.App.Version, log)

	hc.Register("database", healthcheck.CheckerFunc(func(ctx context.Context) healthcheck.Check {
		start := time.Now()
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			return healthcheck.NewCheck(healthcheck.StatusUnhealthy, err.Error(), start)
		}
		return healthcheck.NewCheck(healthcheck.StatusHealthy, "Database reachable", start)
	}))

	hc.Register("catalog", healthcheck.CheckerFunc(func(ctx context.Context) healthcheck.Check {
		start := time.Now()
		count, err := recipes.Count(ctx)
		if err != nil {
			return healthcheck.NewCheck(healthcheck.StatusUnhealthy, err.Error(), start)
		}
		if count == 0 {
			return healthcheck.NewCheck(healthcheck.StatusUnhealthy, "Recipe catalog is empty", start)
		}
		return healthcheck.NewCheck(healthcheck.StatusHealthy, fmt.Sprintf("%d recipes available", count), start)
	}))

	return hc
}

func registerLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Mood Recipe API",
				zap.Int("port", cfg.Server.Port),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
