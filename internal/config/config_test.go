package config

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every PASSVAULT_ env var that Load() reads.
var allConfigKeys = []string{
	"PASSVAULT_LISTEN_ADDR",
	"PASSVAULT_DB_PATH",
	"PASSVAULT_ALLOWED_ORIGINS",
	"PASSVAULT_SEED_DEFAULTS",
	"PASSVAULT_LOG_LEVEL",
	"PASSVAULT_LOG_FORMAT",
}

// isolateConfigEnv saves and unsets all PASSVAULT_ env vars so tests don't
// inherit values from the host environment.
// t.Cleanup restores original values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateConfigEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8000", cfg.ListenAddr)
	assert.Equal(t, "passwords.db", cfg.DBPath)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.True(t, cfg.SeedDefaults)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PASSVAULT_LISTEN_ADDR", "0.0.0.0:9090")
	t.Setenv("PASSVAULT_DB_PATH", "/tmp/vault.db")
	t.Setenv("PASSVAULT_ALLOWED_ORIGINS", " https://vault.example.com/ , ,http://localhost:5173")
	t.Setenv("PASSVAULT_SEED_DEFAULTS", "false")
	t.Setenv("PASSVAULT_LOG_LEVEL", "debug")
	t.Setenv("PASSVAULT_LOG_FORMAT", "JSON")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/vault.db", cfg.DBPath)
	assert.Equal(t, []string{"https://vault.example.com", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.False(t, cfg.SeedDefaults)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_EmptyOrigins(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("PASSVAULT_ALLOWED_ORIGINS", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.NotNil(t, cfg.AllowedOrigins)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "seed defaults", key: "PASSVAULT_SEED_DEFAULTS", value: "sometimes"},
		{name: "log level", key: "PASSVAULT_LOG_LEVEL", value: "loud"},
		{name: "log format", key: "PASSVAULT_LOG_FORMAT", value: "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfigEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
