package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/visapro/visapro-api/internal/api"
	"github.com/visapro/visapro-api/internal/infrastructure/config"
	mongorepo "github.com/visapro/visapro-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/visapro/visapro-api/internal/infrastructure/db/redis"
	"github.com/visapro/visapro-api/pkg/logger"
)

// @title        VisaPro API
// @version      1.0
// @description  Travel and visa services backend.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	log := logger.Init(logger.Options{Level: "info", Pretty: true})

	cfg := config.Load(log)
	log = logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connect")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongorepo.EnsureAllIndexes(ctx,
		mongorepo.NewUserRepository(db),
		mongorepo.NewCountryRepository(db),
		mongorepo.NewHotelRepository(db),
		mongorepo.NewTourRepository(db),
		mongorepo.NewPackageRepository(db),
		mongorepo.NewVisaCategoryRepository(db),
		mongorepo.NewVisaDocumentRepository(db),
	); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	// --- Redis ---
	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}
	defer rdb.Close()

	// --- HTTP server ---
	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting api server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}
