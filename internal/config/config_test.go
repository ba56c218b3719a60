package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "studsafe.db", cfg.DatabaseURL)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.False(t, cfg.CookieSecure)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/studsafe")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://localhost/studsafe", cfg.DatabaseURL)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Run("invalid duration", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "soon")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("negative duration", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "-1h")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid boolean", func(t *testing.T) {
		t.Setenv("COOKIE_SECURE", "maybe")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoad_ProdRequiresRealSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("SESSION_SECRET", "an-actual-secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.AppEnv)
}
