package main

import (
	"github.com/rs/zerolog/log"

	"catalog-backend/internal/config"
	"catalog-backend/internal/infrastructure/cache"
)

// Config holds worker-only settings on top of the shared config
type Config struct {
	Redis      cache.RedisConfig
	Report     config.ReportConfig
	HealthPort string
}

func loadConfig(shared *config.Config) *Config {
	cfg := &Config{
		Redis: cache.RedisConfig{
			Addr:     shared.Redis.Host,
			Password: shared.Redis.Password,
			DB:       shared.Redis.DB,
		},
		Report:     shared.Report,
		HealthPort: getEnv("WORKER_HEALTH_PORT", "9999"),
	}

	log.Info().
		Str("redis", cfg.Redis.Addr).
		Str("report_cron", cfg.Report.Cron).
		Dur("report_window", cfg.Report.Window).
		Msg("Worker config loaded")

	return cfg
}
