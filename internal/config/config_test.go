package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL", "")

	cfg := Load()

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("SESSION_SECRET", "s3cret")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "soon")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}
