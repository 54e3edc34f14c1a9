package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/moviehub/movies-api/internal/api"
	"github.com/moviehub/movies-api/internal/infrastructure/config"
	mongodb "github.com/moviehub/movies-api/internal/infrastructure/db/mongo"
	redisdb "github.com/moviehub/movies-api/internal/infrastructure/db/redis"
	"github.com/moviehub/movies-api/pkg/logger"
)

// @title        Movies API
// @version      1.0
// @description  REST backend with JWT auth, role-based access control and a movies catalog.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Use standard log until the structured logger is configured.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("ensure user indexes failed")
	}
	if err := mongodb.NewMovieRepository(db).EnsureIndexes(ctx); err != nil {
		logg.Fatal().Err(err).Msg("ensure movie indexes failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg, logg)

	go func() {
		logg.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
}
