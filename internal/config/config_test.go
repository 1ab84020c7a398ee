package config

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "DEFAULT_LENGTH", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 12, cfg.DefaultLength)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEFAULT_LENGTH", "24")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "4")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 24, cfg.DefaultLength)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 4, cfg.RateLimitBurst)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("DEFAULT_LENGTH", "twelve")
	t.Setenv("RATE_LIMIT_RPS", "-1")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg := Load()
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 12, cfg.DefaultLength)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoadNonPositiveIntegersFallBack(t *testing.T) {
	t.Setenv("DEFAULT_LENGTH", "0")
	t.Setenv("RATE_LIMIT_BURST", "0")

	cfg := Load()
	assert.Equal(t, 12, cfg.DefaultLength)
	assert.Equal(t, 10, cfg.RateLimitBurst)

	t.Setenv("RATE_LIMIT_BURST", "-3")
	assert.Equal(t, 10, Load().RateLimitBurst)

	t.Setenv("ENV", "production")
	assert.NoError(t, Load().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "defaults", cfg: Config{DefaultLength: 12, RateLimitBurst: 10}},
		{name: "unset default length uses service fallback", cfg: Config{DefaultLength: 0, RateLimitBurst: 10}},
		{name: "negative default length uses service fallback", cfg: Config{DefaultLength: -4, RateLimitBurst: 10}},
		{name: "short default length", cfg: Config{DefaultLength: 6, RateLimitBurst: 10}, wantErr: ErrDefaultLengthTooShort},
		{name: "minimum default length", cfg: Config{DefaultLength: 8, RateLimitBurst: 10}},
		{name: "zero burst", cfg: Config{DefaultLength: 12, RateLimitBurst: 0}, wantErr: ErrRateLimitBurst},
		{name: "negative burst", cfg: Config{DefaultLength: 12, RateLimitBurst: -1}, wantErr: ErrRateLimitBurst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := tt.cfg
			dev.Env = "development"
			assert.NoError(t, dev.Validate())

			prod := tt.cfg
			prod.Env = "production"
			err := prod.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	err := Config{Env: "production", DefaultLength: 5, RateLimitBurst: 0}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDefaultLengthTooShort))
	assert.True(t, errors.Is(err, ErrRateLimitBurst))
}
