package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"catalog-backend/pkg/container"
	"catalog-backend/pkg/logger"
)

// checkDependencies fails startup when Redis or PostgreSQL is unreachable
func checkDependencies(ctx context.Context, c *container.Container) error {
	checks := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"redis", c.Redis.HealthCheck},
		{"postgres", c.DB.Ping},
	}

	for _, check := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := check.fn(checkCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("%s check failed: %w", check.name, err)
		}
		logger.Info("Dependency OK", map[string]interface{}{"check": check.name})
	}
	logger.Debug("All worker dependencies reachable")
	return nil
}

func healthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "catalog-worker"})
	})
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "READY"})
	})
	return r
}

func startHealthServer(port string) *http.Server {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           healthRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("port", port).Msg("Health server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Health server failed")
		}
	}()
	return srv
}
