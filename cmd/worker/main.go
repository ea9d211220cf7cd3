package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"catalog-backend/pkg/container"
	"catalog-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init(getEnv("APP_ENV", "development"), os.Getenv("LOG_LEVEL"))
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.NewContainer(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize container")
	}
	defer c.Cleanup()

	if err := checkDependencies(ctx, c); err != nil {
		logger.Error("Startup check failed", err)
		return
	}

	cfg := loadConfig(c.Config)
	handlers := initializeHandlers(c, cfg)
	srv := setupAsynqServer(cfg, handlers)

	scheduler, err := setupScheduler(cfg)
	if err != nil {
		logger.Error("Failed to register scheduled jobs", err)
		srv.Shutdown()
		return
	}
	health := startHealthServer(cfg.HealthPort)

	<-ctx.Done()

	log.Info().Msg("Gracefully stopping")
	scheduler.Shutdown()
	srv.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = health.Shutdown(shutdownCtx)
	log.Info().Msg("Stopped")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
