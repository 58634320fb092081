// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, an optional config file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App selects the environment profile and tunes logging.
	App App `envPrefix:"APP_"`

	// Adapter holds outbound HTTP settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local key-value store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds environment selection and logging overrides.
type App struct {
	// Env names the profile: development, production or test.
	// Env: APP_ENV
	Env string `env:"ENV"`

	// Debug overrides the profile's Debug switch when set.
	// Env: APP_DEBUG
	Debug *bool `env:"DEBUG"`

	// LogLevel overrides the profile's log level when set.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its log. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the HTTP client that talks to the backend.
type Adapter struct {
	// BaseURL replaces the profile's resolved API base URL entirely.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Origin stands in for the page origin in the production profile.
	// Env: ADAPTER_ORIGIN
	Origin string `env:"ORIGIN"`

	// RequestTimeout bounds a single HTTP round trip.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit caps outgoing requests per second. Zero disables limiting.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the limiter bucket size.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups local persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the local key-value database location.
type DB struct {
	// DSN is a SQLite file path, or ":memory:" for a store that lives only as
	// long as the process.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background worker settings.
type Workers struct {
	// SessionCheckInterval is how often the stored token is checked for
	// expiry.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// Defaults applied underneath every other source.
const (
	DefaultRequestTimeout       = 15 * time.Second
	DefaultRateBurst            = 1
	DefaultSessionCheckInterval = time.Minute
	MemoryDSN                   = ":memory:"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			RateBurst:      DefaultRateBurst,
		},
		Storage: Storage{DB: DB{DSN: defaultDSN()}},
		Workers: Workers{SessionCheckInterval: DefaultSessionCheckInterval},
	}
}

func defaultDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "blog-client.db"
	}
	return filepath.Join(dir, "go-blog-client", "client.db")
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (later sources win for non-zero fields):
//  1. Built-in defaults
//  2. Config file (path resolved from environment and flags)
//  3. Environment variables (after loading .env)
//  4. Command-line flags
//
// flags is the value returned by [RegisterFlags] after the flag set has been
// parsed; nil means no flags.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withFile().
		build()
}

