// DotWatch API server.
//
// @title        DotWatch API
// @version      1.0
// @description  REST API for the DotWatch monitoring dashboard: users and
// @description  company admins register against a document store, users
// @description  attach monitored machines, and the admin dashboard reads a
// @description  company-scoped fan-out of users and their machines.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dotwatch/dotwatch-api/internal/api"
	"github.com/dotwatch/dotwatch-api/internal/infrastructure/config"
	mongodb "github.com/dotwatch/dotwatch-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dotwatch/dotwatch-api/internal/infrastructure/db/redis"
	"github.com/dotwatch/dotwatch-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env != "production",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	for name, idx := range map[string]interface {
		EnsureIndexes(context.Context) error
	}{
		"users":    mongodb.NewUserRepository(db),
		"admin":    mongodb.NewAdminRepository(db),
		"machines": mongodb.NewMachineRepository(db),
	} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("failed to ensure indexes")
		}
	}

	e := api.NewRouter(db, rdb, cfg)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting dotwatch api")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-stop
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
