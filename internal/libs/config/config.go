// Package config provides application configuration management from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	DatabaseURL     string // Optional; the catalog is read from Postgres when set
	CatalogPath     string // Optional catalog file (.yaml, .json, .jsonl)
	APIPort         string
	APIHost         string
	LogLevel        string
	RateLimitRPS    float64 // Requests per second per client, 0 disables limiting
	RateLimitBurst  int
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		APIPort:     getEnv("API_PORT", "8080"),
		APIHost:     getEnv("API_HOST", "0.0.0.0"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "20"), 64); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitRPS < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "40")); err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST: %w", err)
	}
	if cfg.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")); err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	return cfg, nil
}

// Addr returns the host:port the API listens on
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.APIHost, c.APIPort)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
