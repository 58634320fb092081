// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_DefaultsOnly verifies that an empty builder yields the built-in
// defaults.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultRateBurst, cfg.Adapter.RateBurst)
	assert.Equal(t, DefaultSessionCheckInterval, cfg.Workers.SessionCheckInterval)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_Precedence verifies file < env < flags.
func TestBuild_Precedence(t *testing.T) {
	debugOff := false
	b := newConfigBuilder()
	b.file = &StructuredConfig{
		App:     App{Env: "test", LogLevel: "info"},
		Adapter: Adapter{RequestTimeout: time.Second, Origin: "https://file.example"},
	}
	b.env = &StructuredConfig{
		App:     App{Env: "production"},
		Adapter: Adapter{RequestTimeout: 2 * time.Second},
	}
	b.flags = &StructuredConfig{
		App:     App{Debug: &debugOff},
		Adapter: Adapter{RequestTimeout: 3 * time.Second},
	}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env, "env beats file")
	assert.Equal(t, "info", cfg.App.LogLevel, "file value survives when nobody overrides it")
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout, "flags beat env")
	assert.Equal(t, "https://file.example", cfg.Adapter.Origin)
	require.NotNil(t, cfg.App.Debug)
	assert.False(t, *cfg.App.Debug, "explicit false survives the merge")
}

// TestBuild_RejectsNegativeRate verifies structured validation.
func TestBuild_RejectsNegativeRate(t *testing.T) {
	b := newConfigBuilder()
	b.flags = &StructuredConfig{Adapter: Adapter{RateLimit: -1}}

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// TestWithFile_FlagPathWins verifies that the flag's config path is used over
// the environment's.
func TestWithFile_FlagPathWins(t *testing.T) {
	envFile := writeConfigFile(t, "env.json", `{"app": {"env": "test"}}`)
	flagFile := writeConfigFile(t, "flag.json", `{"app": {"env": "production"}}`)

	b := newConfigBuilder()
	b.env = &StructuredConfig{ConfigFilePath: envFile}
	b.flags = &StructuredConfig{ConfigFilePath: flagFile}

	b.withFile()
	require.NoError(t, b.err)
	require.NotNil(t, b.file)
	assert.Equal(t, "production", b.file.App.Env)
}

// TestWithFile_NoPath verifies that no file is read when none is configured.
func TestWithFile_NoPath(t *testing.T) {
	b := newConfigBuilder().withFlags(&StructuredConfig{})
	b.withFile()

	assert.NoError(t, b.err)
	assert.Nil(t, b.file)
}

// TestWithFile_BadPathAccumulatesError verifies that file errors are kept on
// the builder.
func TestWithFile_BadPathAccumulatesError(t *testing.T) {
	b := newConfigBuilder().withFlags(&StructuredConfig{ConfigFilePath: "/does/not/exist.json"})
	b.withFile()

	require.Error(t, b.err)

	_, err := b.build()
	require.Error(t, err)
}

// TestGetStructuredConfig_FromEnvAndFlags exercises the full chain.
func TestGetStructuredConfig_FromEnvAndFlags(t *testing.T) {
	file := writeConfigFile(t, "cfg.yaml", "adapter:\n  rate_limit: 1\n")
	setEnvVars(t, map[string]string{
		"APP_ENV":        "test",
		"STORAGE_DB_DSN": ":memory:",
	})

	cfg, err := GetStructuredConfig(&StructuredConfig{ConfigFilePath: file, App: App{LogLevel: "warn"}})
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.App.Env)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, MemoryDSN, cfg.Storage.DB.DSN)
	assert.InDelta(t, 1.0, cfg.Adapter.RateLimit, 1e-9)
}
