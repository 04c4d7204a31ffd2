package main

import (
	"context"

	"github.com/kingRayhan/dating-app/internal/app"
	"github.com/kingRayhan/dating-app/internal/cache"
	"github.com/kingRayhan/dating-app/internal/config"
	"github.com/kingRayhan/dating-app/internal/db"
	"github.com/kingRayhan/dating-app/internal/logger"
	"github.com/kingRayhan/dating-app/internal/notify"
	"github.com/kingRayhan/dating-app/internal/server"
	transport "github.com/kingRayhan/dating-app/internal/transport/http"
)

func main() {
	cfg := config.New()

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		log.Error("failed to init db", "err", err)
		return
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Error("failed to connect to redis", "err", err)
		return
	}

	appCtx := app.New(database, redisCache, cfg, log)
	notifier := &notify.LogNotifier{Logger: log}

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	router := transport.NewRouter(appCtx, notifier)

	addr := cfg.HTTP.Host + ":" + cfg.HTTP.Port
	log.Info("starting HTTP server", "addr", addr)

	if err := server.StartHTTPServer(cfg, router); err != nil {
		log.Error("HTTP server exited", "err", err)
	}
}
