// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_ENV":       "production",
		"APP_DEBUG":     "true",
		"APP_LOG_LEVEL": "warn",
		"APP_LOG_FILE":  "/tmp/blog.log",

		"ADAPTER_BASE_URL":        "https://api.blog.example",
		"ADAPTER_ORIGIN":          "https://blog.example",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_RATE_LIMIT":      "2.5",
		"ADAPTER_RATE_BURST":      "5",

		"STORAGE_DB_DSN": "/var/lib/blog/client.db",

		"WORKERS_SESSION_CHECK_INTERVAL": "2m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)

	assert.Equal(t, "production", cfg.App.Env)
	require.NotNil(t, cfg.App.Debug)
	assert.True(t, *cfg.App.Debug)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/blog.log", cfg.App.LogFile)

	assert.Equal(t, "https://api.blog.example", cfg.Adapter.BaseURL)
	assert.Equal(t, "https://blog.example", cfg.Adapter.Origin)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Adapter.RateLimit, 1e-9)
	assert.Equal(t, 5, cfg.Adapter.RateBurst)

	assert.Equal(t, "/var/lib/blog/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SessionCheckInterval)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
	assert.Nil(t, cfg.App.Debug, "unset APP_DEBUG must stay nil")
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_LoadsDotEnvFile(t *testing.T) {
	clearEnvVars(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=test\nSTORAGE_DB_DSN=:memory:\n"), 0o600))

	prev := dotEnvFile
	dotEnvFile = path
	t.Cleanup(func() {
		dotEnvFile = prev
		_ = os.Unsetenv("APP_ENV")
		_ = os.Unsetenv("STORAGE_DB_DSN")
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, MemoryDSN, cfg.Storage.DB.DSN)
}

func TestParseEnv_ProcessEnvBeatsDotEnv(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_ENV": "production"})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_ENV=test\n"), 0o600))

	prev := dotEnvFile
	dotEnvFile = path
	t.Cleanup(func() { dotEnvFile = prev })

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "production", cfg.App.Env)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_ENV",
		"APP_DEBUG",
		"APP_LOG_LEVEL",
		"APP_LOG_FILE",

		"ADAPTER_BASE_URL",
		"ADAPTER_ORIGIN",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_RATE_LIMIT",
		"ADAPTER_RATE_BURST",

		"STORAGE_DB_DSN",

		"WORKERS_SESSION_CHECK_INTERVAL",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
