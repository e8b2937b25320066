// Package config loads server settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Estimate  EstimateConfig
	LogLevel  string
}

type ServerConfig struct {
	Addr    string
	TLSCert string
	TLSKey  string
}

// TLS reports whether both certificate and key are configured.
func (s ServerConfig) TLS() bool {
	return s.TLSCert != "" && s.TLSKey != ""
}

// AuthConfig holds the HMAC key for bearer tokens. Empty leaves the API open.
type AuthConfig struct {
	TokenKey string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type EstimateConfig struct {
	GSTRate float64
}

// Load reads the environment (optionally from envFile) into a Config.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		// a missing .env is fine; the environment may carry everything
		_ = godotenv.Load()
	}

	rps, err := getenvFloat("RATE_LIMIT_RPS", 5)
	if err != nil {
		return nil, err
	}
	burst, err := getenvInt("RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, err
	}
	gst, err := getenvFloat("GST_RATE", 0.18)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Addr:    getenvWithDefault("APP_ADDR", ":8080"),
			TLSCert: os.Getenv("TLS_CERT"),
			TLSKey:  os.Getenv("TLS_KEY"),
		},
		Auth:      AuthConfig{TokenKey: os.Getenv("TOKEN_KEY")},
		RateLimit: RateLimitConfig{RPS: rps, Burst: burst},
		Estimate:  EstimateConfig{GSTRate: gst},
		LogLevel:  getenvWithDefault("LOG_LEVEL", "info"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Addr == "" {
		return errors.New("APP_ADDR must not be empty")
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	switch {
	case c.RateLimit.RPS <= 0:
		return errors.New("RATE_LIMIT_RPS must be positive")
	case c.RateLimit.Burst < 1:
		return errors.New("RATE_LIMIT_BURST must be at least 1")
	case c.Estimate.GSTRate < 0 || c.Estimate.GSTRate >= 1:
		return errors.New("GST_RATE must be in [0, 1)")
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", key, raw)
	}
	return v, nil
}

func getenvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, raw)
	}
	return v, nil
}
