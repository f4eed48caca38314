package config_test

import (
	"testing"

	"github.com/celvintr/arquialum-sub003/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 5, cfg.WorkerPoolSize)
	assert.Equal(t, 8, cfg.JWTExpirationHours)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins())
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.NotEmpty(t, cfg.RedisURL)
	assert.NotEmpty(t, cfg.ReciboStoragePath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "super-secreto")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.arquialum.mx, https://admin.arquialum.mx")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "super-secreto", cfg.JWTSecret)
	assert.Equal(t,
		[]string{"https://app.arquialum.mx", "https://admin.arquialum.mx"},
		cfg.CORSOrigins())
}
