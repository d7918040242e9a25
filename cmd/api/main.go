package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ayudabesh/marketplace-api/internal/api"
	"github.com/ayudabesh/marketplace-api/internal/infrastructure/config"
	mongodb "github.com/ayudabesh/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ayudabesh/marketplace-api/internal/infrastructure/db/redis"
	"github.com/ayudabesh/marketplace-api/pkg/logger"
)

func main() {
	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") == "development",
	})

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// A missing JWT_SECRET lands here: never start with a default secret.
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		if db == nil {
			log.Fatal().Err(err).Msg("mongodb connection failed")
		}
		// Degraded mode: storage calls will answer 503 until MongoDB returns.
		log.Error().Err(err).Msg("mongodb unreachable at startup, continuing degraded")
	} else {
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")
		if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
			log.Error().Err(err).Msg("failed to create user indexes")
		}
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unreachable at startup, login throttling fails open")
	}
	defer rdb.Close()

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("marketplace api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
