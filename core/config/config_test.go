package config_test

import (
	"os"
	"testing"

	"s3util/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "s3.amazonaws.com", cfg.Storage.Endpoint)
	assert.Empty(t, cfg.Storage.AccessKey)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE_ENDPOINT", "http://localhost:9000")
	t.Setenv("STORAGE_ACCESS_KEY", "minioadmin")
	t.Setenv("STORAGE_SECRET_KEY", "minioadmin")
	t.Setenv("STORAGE_USE_SSL", "false")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "minioadmin", cfg.Storage.AccessKey)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	// Registers cleanup so the variable set by godotenv.Overload is restored.
	t.Setenv("STORAGE_REGION", "")

	dir := t.TempDir()
	err := os.WriteFile(dir+"/.env", []byte("STORAGE_REGION=eu-west-1\n"), 0o600)
	require.NoError(t, err)

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", cfg.Storage.Region)
}
