package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devPreferencesSecret = "dev-secret-change-in-production"

type Config struct {
	Port              string
	Env               string
	DatabaseDSN       string
	PreferencesSecret string
	PreferencesTTL    time.Duration
	FingerprintKey    string
	RateLimitRPS      float64
	RateLimitBurst    int
}

// Load reads the server configuration from the environment.
func Load() Config {
	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DatabaseDSN:       getEnv("DATABASE_DSN", ""),
		PreferencesSecret: getEnv("PREFERENCES_SECRET", devPreferencesSecret),
		PreferencesTTL:    getDuration("PREFERENCES_TTL", 30*24*time.Hour),
		FingerprintKey:    getEnv("FINGERPRINT_KEY", ""),
		RateLimitRPS:      getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:    getInt("RATE_LIMIT_BURST", 10),
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	return cfg
}

// Validate reports settings that must not reach a running server.
func (c Config) Validate() error {
	if c.Env == "production" && c.PreferencesSecret == devPreferencesSecret {
		return fmt.Errorf("PREFERENCES_SECRET must be set in production environment")
	}
	if c.PreferencesTTL <= 0 {
		return fmt.Errorf("PREFERENCES_TTL must be positive")
	}
	if len(c.FingerprintKey) > 64 {
		return fmt.Errorf("FINGERPRINT_KEY must be at most 64 bytes")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit must allow at least one request")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
