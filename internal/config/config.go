package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config is populated from environment variables
type Config struct {
	App    AppConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Report ReportConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
}

// ReportConfig drives the scheduled new-ISBN report
type ReportConfig struct {
	Cron        string
	Window      time.Duration
	LockAtLeast time.Duration
	LockAtMost  time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", defaultJWTSecret),
		},
		Report: ReportConfig{
			Cron:        getEnv("REPORT_CRON", "0 * * * *"),
			Window:      getEnvDuration("REPORT_WINDOW", time.Hour),
			LockAtLeast: getEnvDuration("REPORT_LOCK_AT_LEAST", time.Minute),
			LockAtMost:  getEnvDuration("REPORT_LOCK_AT_MOST", 10*time.Minute),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Environment == "production" && c.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be set in production")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}

	if _, err := cron.ParseStandard(c.Report.Cron); err != nil {
		return fmt.Errorf("invalid REPORT_CRON %q: %w", c.Report.Cron, err)
	}
	if c.Report.Window <= 0 {
		return fmt.Errorf("REPORT_WINDOW must be positive")
	}
	if c.Report.LockAtMost <= 0 {
		return fmt.Errorf("REPORT_LOCK_AT_MOST must be positive")
	}
	if c.Report.LockAtLeast > c.Report.LockAtMost {
		return fmt.Errorf("REPORT_LOCK_AT_LEAST (%s) must not exceed REPORT_LOCK_AT_MOST (%s)",
			c.Report.LockAtLeast, c.Report.LockAtMost)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
