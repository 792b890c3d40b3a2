package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/alhayat/internal/cache"
	"github.com/example/alhayat/internal/config"
	"github.com/example/alhayat/internal/database"
	"github.com/example/alhayat/internal/logger"
	"github.com/example/alhayat/internal/routes"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.IsProduction())

	db := database.Connect(cfg.DatabaseURL)
	if err := database.Seed(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatal("database seeding failed", map[string]interface{}{"error": err.Error()})
	}

	contentCache, err := cache.NewCache(cfg.RedisURL, cfg.EnableRedis)
	if err != nil {
		logger.Warn("Redis unavailable, serving content without cache", map[string]interface{}{"error": err.Error()})
	}
	defer contentCache.Close()

	app := routes.NewApp(db, cfg, contentCache)

	go func() {
		logger.Info("Starting server", map[string]interface{}{"port": cfg.AppPort, "environment": cfg.Environment})
		if err := app.Listen(":" + cfg.AppPort); err != nil {
			logger.Fatal("fiber.Listen error", map[string]interface{}{"error": err.Error()})
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error(err, "Graceful shutdown failed", nil)
	}
}
