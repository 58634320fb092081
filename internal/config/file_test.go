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

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_JSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{
		"app": {"env": "production", "debug": true, "log_level": "info", "log_file": "/tmp/x.log"},
		"adapter": {
			"base_url": "https://api.blog.example",
			"origin": "https://blog.example",
			"request_timeout": "20s",
			"rate_limit": 4,
			"rate_burst": 8
		},
		"storage": {"db": {"dsn": "/tmp/client.db"}},
		"workers": {"session_check_interval": "90s"}
	}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	require.NotNil(t, cfg.App.Debug)
	assert.True(t, *cfg.App.Debug)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "/tmp/x.log", cfg.App.LogFile)
	assert.Equal(t, "https://api.blog.example", cfg.Adapter.BaseURL)
	assert.Equal(t, "https://blog.example", cfg.Adapter.Origin)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 4.0, cfg.Adapter.RateLimit, 1e-9)
	assert.Equal(t, 8, cfg.Adapter.RateBurst)
	assert.Equal(t, "/tmp/client.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 90*time.Second, cfg.Workers.SessionCheckInterval)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", `
app:
  env: test
  log_level: debug
adapter:
  request_timeout: 3s
storage:
  db:
    dsn: ":memory:"
workers:
  session_check_interval: 1000000000
`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Env)
	assert.Nil(t, cfg.App.Debug)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, MemoryDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, time.Second, cfg.Workers.SessionCheckInterval)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestParseFile_InvalidJSON(t *testing.T) {
	p := writeConfigFile(t, "broken.json", `{"app": `)

	_, err := parseFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseFile_InvalidYAMLDuration(t *testing.T) {
	p := writeConfigFile(t, "broken.yml", "adapter:\n  request_timeout: soon\n")

	_, err := parseFile(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding yaml configs")
}

func TestDuration_JSONRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))

	var back Duration
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, d, back)

	require.NoError(t, back.UnmarshalJSON([]byte("1000")))
	assert.Equal(t, Duration(time.Microsecond), back)
}
