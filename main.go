package main

import (
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/avpratap/riqueza-backend/config"
	"github.com/avpratap/riqueza-backend/database"
	"github.com/avpratap/riqueza-backend/models"
	"github.com/avpratap/riqueza-backend/routes"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := models.Migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, guest cart cache disabled", zap.Error(err))
			redisClient = nil
		}
	} else {
		logger.Info("REDIS_URL not set, guest cart cache disabled")
	}

	router := routes.Setup(cfg, db, redisClient, logger)

	logger.Info("server starting", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
