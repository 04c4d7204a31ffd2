package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/kingRayhan/dating-app/internal/cache"
	"github.com/kingRayhan/dating-app/internal/config"
)

// AppContext holds shared dependencies (DB, Redis, Config, Logger).
type AppContext struct {
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Config     *config.Config
	Logger     *slog.Logger
}

// New creates a new AppContext.
func New(db *gorm.DB, rdb *cache.RedisCache, cfg *config.Config, logger *slog.Logger) *AppContext {
	return &AppContext{
		DB:         db,
		RedisCache: rdb,
		Config:     cfg,
		Logger:     logger,
	}
}
