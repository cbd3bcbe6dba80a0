package main

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"

	"github.com/medibook/appointment-engine/config"
	"github.com/medibook/appointment-engine/controllers"
	"github.com/medibook/appointment-engine/remote"
	"github.com/medibook/appointment-engine/routes"
	"github.com/medibook/appointment-engine/sor"
	"github.com/medibook/appointment-engine/store"
	"github.com/medibook/appointment-engine/syncer"
)

func main() {
	cfg := config.Load()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := context.Background()

	// Durable local storage: redis when reachable, otherwise the session
	// runs on in-memory state only.
	var kv store.KV
	if rkv, err := store.NewRedisKV(ctx, cfg.RedisAddr, cfg.RedisPrefix); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable, local queue is in-memory for this session")
		kv = store.NewMemoryKV()
	} else {
		defer rkv.Close()
		kv = rkv
	}
	localStore := store.Open(ctx, kv, logger)

	client := remote.NewClient(cfg.RemoteBaseURL, logger)
	directory := remote.NewDirectory(client, logger)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	if cfg.DemoMode {
		db, err := sor.Open(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("demo mode requires a database")
		}
		if err := sor.Seed(db); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
		sor.NewService(db, logger).RegisterRoutes(app)
		logger.Info().Str("base_url", cfg.RemoteBaseURL).Msg("demo system of record mounted")
	}

	h := controllers.New(localStore, client, directory, logger)

	trigger := syncer.New(h.SyncRun, client.Ping, cfg.SyncSchedule, logger)
	h.Trigger = trigger
	if err := trigger.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("invalid sync schedule")
	}

	routes.Setup(app, h, cfg)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
