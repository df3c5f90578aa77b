package config

import (
	"errors"
	"os"
)

type Config struct {
	Port          string
	DatabaseDSN   string
	SessionSecret string
	RedisAddr     string
	RedisPassword string
	Env           string
}

// Load reads configuration from the environment. main loads .env first via
// godotenv, so plain os.Getenv is enough here.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		Env:           getenv("APP_ENV", "development"),
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN is required")
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is required")
	}
	// The cache is optional in development but mandatory in production.
	if cfg.Production() && cfg.RedisAddr == "" {
		return nil, errors.New("REDIS_ADDR is required in production")
	}
	return cfg, nil
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
