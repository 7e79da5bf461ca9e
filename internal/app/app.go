package app

import (
	"context"
	"time"

	"go-salary/internal/config"
	"go-salary/internal/middleware"
	"go-salary/internal/shared/connection"
	"go-salary/internal/shared/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects infrastructure and registers every module on router.
// The returned cleanup closes the connections it opened.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L()

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.ConnRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	logger.Info("database connection established")

	if cfg.RunMigrations {
		if err := database.RunMigrations(sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	logger.Info("redis connection established")

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}

	// 2. Middleware
	router.Use(middleware.RequestID(), middleware.ContextLogger(logger.Named("http")))

	// 3. Register Modules & Routes
	mods := registerModules(router, gormDB, rdb, cfg, logger)

	// 4. Admin bootstrap
	if cfg.Admin.Email != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mods.authService.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
			cleanup()
			return nil, err
		}
	}

	return cleanup, nil
}
