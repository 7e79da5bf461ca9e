package app

import (
	"go-salary/internal/auth"
	"go-salary/internal/config"
	"go-salary/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	authService   auth.Service
	salaryService salary.Service
}

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg config.Config,
	logger *zap.Logger,
) modules {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	tokenStore := auth.NewRedisTokenStore(rdb)

	// --- Services ---
	authService := auth.NewService(authRepo, tokenStore, auth.TokenConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.TokenTTL,
	}, logger)
	salaryService := salary.NewService(salaryRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	salaryHandler := salary.NewHandler(salaryService, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, authService)
		salary.RegisterRoutes(api, salaryHandler, authService)
	}

	return modules{authService: authService, salaryService: salaryService}
}
