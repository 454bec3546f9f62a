package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PATH", "/srv/data.db")

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "5005", cfg.Port)
	assert.Equal(t, "/srv/data.db", cfg.DBPath)
}

func TestLoadCustomEnv(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_PATH", "./data.db")

	cfg := Load()
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./data.db", cfg.DBPath)
}

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 20, cfg.Capacity)
	assert.Equal(t, 10, cfg.RefillTokens)
	assert.Equal(t, time.Second, cfg.RefillInterval)
	assert.Equal(t, 10*time.Minute, cfg.TTL)
	assert.Equal(t, "ip", cfg.KeyStrategy)
}

func TestLoadRateLimitConfigOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_CAPACITY", "5")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "250ms")
	t.Setenv("RATE_LIMIT_KEY_STRATEGY", "ip_route")

	cfg := LoadRateLimitConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5, cfg.Capacity)
	assert.Equal(t, 250*time.Millisecond, cfg.RefillInterval)
	assert.Equal(t, "ip_route", cfg.KeyStrategy)
}

func TestEnvBool(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "not-a-bool")
	assert.True(t, envBool("RATE_LIMIT_ENABLED", true))
	assert.False(t, envBool("RATE_LIMIT_ENABLED", false))

	t.Setenv("RATE_LIMIT_ENABLED", "1")
	assert.True(t, envBool("RATE_LIMIT_ENABLED", false))
}
