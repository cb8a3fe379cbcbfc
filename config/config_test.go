package config

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBConfig_Sanitize(t *testing.T) {
	d := DBConfig{MaxOpenConns: 0, MaxIdleConns: -3}
	d.Sanitize()
	assert.Equal(t, 1, d.MaxOpenConns)
	assert.Equal(t, 0, d.MaxIdleConns)

	d = DBConfig{MaxOpenConns: 4, MaxIdleConns: 10}
	d.Sanitize()
	assert.Equal(t, 4, d.MaxIdleConns)
}

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.True(t, cfg.Postgres.RunMigrationsOnStart)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("REDIS_URI", "redis://cache.internal:6380")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 50, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, "redis://cache.internal:6380", cfg.Redis.URI)
}

func TestAppConfig_DevModeDetection(t *testing.T) {
	t.Run("DEV flag", func(t *testing.T) {
		t.Setenv("DEV", "true")
		var cfg AppConfig
		require.NoError(t, env.Parse(&cfg))
		cfg.Sanitize()
		assert.True(t, cfg.IsDev)
	})

	t.Run("NODE_ENV fallback", func(t *testing.T) {
		t.Setenv("NODE_ENV", "development")
		var cfg AppConfig
		require.NoError(t, env.Parse(&cfg))
		cfg.Sanitize()
		assert.True(t, cfg.IsDev)
	})

	t.Run("production stays off", func(t *testing.T) {
		t.Setenv("NODE_ENV", "production")
		var cfg AppConfig
		require.NoError(t, env.Parse(&cfg))
		cfg.Sanitize()
		assert.False(t, cfg.IsDev)
	})
}
