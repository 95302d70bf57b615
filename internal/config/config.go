// Package config loads process-wide configuration from the environment, with
// defaults suitable for the in-memory demo profile.
package config

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// devJWTSecret is the compiled-in fallback signing key for non-production
// profiles. Deployments must set JWT_SECRET; main logs a loud warning
// whenever this fallback is active.
const devJWTSecret = "dev-only-insecure-signing-key"

type Config struct {
	Port          string
	DatabaseURL   string // empty selects the in-memory stores
	RedisAddr     string // empty disables event publishing
	RedisPassword string
	JWTSecret     string
	DevSecret     bool // true when the fallback signing key is in use
	TokenTTL      time.Duration
	BcryptCost    int
}

func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		TokenTTL:      getDuration("TOKEN_TTL", 24*time.Hour),
		BcryptCost:    getInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = devJWTSecret
		cfg.DevSecret = true
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
