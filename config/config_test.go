package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/records")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "academic-records", cfg.App.Name)
	assert.Equal(t, EnvDevelopment, cfg.App.Environment)
	assert.False(t, cfg.App.Debug)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, int32(10), cfg.Database.MaxConns)
	assert.Equal(t, int32(2), cfg.Database.MinConns)
	assert.Equal(t, 5, cfg.Database.ConnectAttempts)

	assert.False(t, cfg.Redis.Enabled)
}

func TestLoad_RedisRequiresURLWhenEnabled(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/records")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_URL", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	cfg, err := Load()
	assert.NoError(t, err)
	assert.True(t, cfg.Redis.Enabled)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "value")
	assert.Equal(t, "value", getEnv("X_STR", "def"))
	assert.Equal(t, "def", getEnv("X_MISSING", "def"))

	t.Setenv("X_BOOL", "true")
	assert.True(t, getEnvBool("X_BOOL", false))
	t.Setenv("X_BOOL", "not-a-bool")
	assert.False(t, getEnvBool("X_BOOL", false))

	t.Setenv("X_INT", "42")
	assert.Equal(t, 42, getEnvInt("X_INT", 7))
	t.Setenv("X_INT", "nan")
	assert.Equal(t, 7, getEnvInt("X_INT", 7))

	t.Setenv("X_DUR", "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration("X_DUR", time.Minute))
	// Plain numbers are treated as seconds.
	t.Setenv("X_DUR", "30")
	assert.Equal(t, 30*time.Second, getEnvDuration("X_DUR", time.Minute))
	t.Setenv("X_DUR", "bogus")
	assert.Equal(t, time.Minute, getEnvDuration("X_DUR", time.Minute))
}
