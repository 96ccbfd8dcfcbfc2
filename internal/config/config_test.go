package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, "media", cfg.MediaDir)
	assert.Equal(t, 100, cfg.RateLimitPerSecond)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "9000")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("RATE_LIMIT_PER_SECOND", "10")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 10, cfg.RateLimitPerSecond)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "not-a-duration")
	t.Setenv("RATE_LIMIT_PER_SECOND", "many")

	cfg := Load()

	assert.Equal(t, 30*time.Minute, cfg.AccessTTL)
	assert.Equal(t, 100, cfg.RateLimitPerSecond)
}
