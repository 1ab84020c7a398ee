package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/vaultpass/pwtool/internal/crypto"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       slog.Level
	DefaultLength  int
	RateLimitRPS   float64
	RateLimitBurst int
}

var (
	ErrDefaultLengthTooShort = errors.New("DEFAULT_LENGTH must be at least 8")
	ErrRateLimitBurst        = errors.New("RATE_LIMIT_BURST must be at least 1")
)

func Load() Config {
	return Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getLevel("LOG_LEVEL", slog.LevelInfo),
		DefaultLength:  getInt("DEFAULT_LENGTH", crypto.DefaultLength),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 10),
	}
}

// Validate rejects settings that would make every generate or check request fail.
// Production refuses to start; development keeps running with a warning.
// A non-positive DefaultLength is fine: the generator service falls back to 12.
func (c Config) Validate() error {
	var errs []error
	if c.DefaultLength > 0 && c.DefaultLength < crypto.MinLength {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrDefaultLengthTooShort, c.DefaultLength))
	}
	if c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Errorf("%w, got %d", ErrRateLimitBurst, c.RateLimitBurst))
	}
	if len(errs) == 0 {
		return nil
	}

	err := errors.Join(errs...)
	if c.Env == "production" {
		return err
	}
	slog.Warn("invalid configuration, affected requests will fail", "error", err)
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getLevel(key string, fallback slog.Level) slog.Level {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("invalid log level in environment, using default", "key", key, "value", v)
		return fallback
	}
	return level
}
