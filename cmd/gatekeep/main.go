package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/target/gatekeep/internal/bootstrap"
	"github.com/target/gatekeep/internal/data"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting gatekeep",
		"dev", cfg.IsDev,
		"schemes", cfg.Auth.Schemes,
	)

	deps := bootstrap.AuthDeps{Config: &cfg, Logger: logger}

	// The database backs the login path of the session/token schemes. In dev
	// mode a missing database degrades to the seeded in-memory store.
	pool, err := bootstrap.OpenDatabase(ctx, cfg.Postgres)
	if err != nil {
		if !cfg.IsDev {
			return err
		}
		logger.WarnContext(ctx, "database unavailable, continuing in dev mode", "error", err)
	} else {
		defer pool.Close()
		deps.DB = pool

		if cfg.Postgres.RunMigrationsOnStart {
			if err := data.Migrate(ctx, pool); err != nil {
				return err
			}
		} else {
			logger.InfoContext(ctx, "skipping database migrations on startup", "reason", "disabled via config")
		}
	}

	redisClient, err := bootstrap.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		if !cfg.IsDev {
			return err
		}
		logger.WarnContext(ctx, "redis unavailable, continuing in dev mode", "error", err)
	}
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
		deps.RedisClient = redisClient
	}

	services := bootstrap.BuildAuthStack(deps)
	server := bootstrap.NewHTTPServer(cfg.HTTP.Addr, services, logger)

	return bootstrap.RunHTTPServer(ctx, server, logger)
}
