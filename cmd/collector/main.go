package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/NJR201-job-market-analysis/collector-104/internal/api"
	"github.com/NJR201-job-market-analysis/collector-104/internal/cache"
	cacheredis "github.com/NJR201-job-market-analysis/collector-104/internal/cache/redis"
	"github.com/NJR201-job-market-analysis/collector-104/internal/collector"
	"github.com/NJR201-job-market-analysis/collector-104/internal/config"
	"github.com/NJR201-job-market-analysis/collector-104/internal/events"
	"github.com/NJR201-job-market-analysis/collector-104/internal/storage"
	"github.com/NJR201-job-market-analysis/collector-104/internal/telemetry"

	_ "github.com/lib/pq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return zap.NewProduction()
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.PostgresMaxOpenConns)
	db.SetMaxIdleConns(cfg.PostgresMaxIdleConns)
	db.SetConnMaxLifetime(cfg.PostgresConnMaxLife)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return db.PingContext(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return db.Close()
		},
	})

	return db, nil
}

func newCache(lc fx.Lifecycle, cfg *config.Config) cache.Cache {
	c := cacheredis.New(cache.Options{
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		DefaultTTL:    cfg.CacheTTL,
	})

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return c.Close()
		},
	})

	return c
}

func newPublisher(lc fx.Lifecycle, logger *zap.Logger, cfg *config.Config) (events.Publisher, error) {
	publisher, err := events.NewPublisher(logger, cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			publisher.Close()
			return nil
		},
	})

	return publisher, nil
}

func run(lc fx.Lifecycle, c *collector.Collector, shutdowner fx.Shutdowner, logger *zap.Logger, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var shutdownTracer func()
			if cfg.OTLPCollectorURL != "" {
				var err error
				shutdownTracer, err = telemetry.InitTracer(ctx, "collector-104", cfg.OTLPCollectorURL)
				if err != nil {
					logger.Warn("tracing disabled", zap.Error(err))
					shutdownTracer = nil
				}
			}

			go func() {
				if err := c.Run(context.Background()); err != nil {
					logger.Error("collection run failed", zap.Error(err))
				}
				if shutdownTracer != nil {
					shutdownTracer()
				}
				if err := shutdowner.Shutdown(); err != nil {
					logger.Error("shutdown failed", zap.Error(err))
				}
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			newLogger,
			newDatabase,
			newCache,
			newPublisher,
			storage.NewStore,
			api.NewPostingClient,
			collector.New,
		),
		fx.Invoke(run),
	)

	app.Run()

	if err := app.Err(); err != nil {
		log.Fatal(err)
	}
}
