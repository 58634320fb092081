// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientAdapter holds the resolved settings of the HTTP client.
type ClientAdapter struct {
	// BaseURL is the absolute API base URL every request path is appended to.
	BaseURL string
	// RequestTimeout bounds a single request.
	RequestTimeout time.Duration
	// RateLimit is the allowed requests per second; zero disables the limiter.
	RateLimit float64
	// RateBurst is the limiter bucket size.
	RateBurst int
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	SessionCheckInterval time.Duration
}

// ClientLog is the effective logging setup after overrides.
type ClientLog struct {
	Debug bool
	Level string
	File  string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig] and the selected environment [Profile].
type ClientConfig struct {
	Env     Environment
	Profile Profile
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     ClientLog
}

// GetClientConfig loads the merged configuration via [GetStructuredConfig]
// and derives the validated client view from it.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig selects the profile named by cfg.App.Env, applies the
// overrides carried by cfg and validates the result.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	env := ParseEnvironment(cfg.App.Env)
	profile := ProfileFor(cfg.App.Env).WithOrigin(cfg.Adapter.Origin)

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.Adapter.BaseURL), "/")
	if baseURL == "" {
		resolved, err := profile.ResolveAPIBaseURL()
		if err != nil {
			return nil, fmt.Errorf("resolve api base url for %s: %w", env, err)
		}
		baseURL = resolved
	}

	log := ClientLog{Debug: profile.Debug, Level: profile.LogLevel, File: cfg.App.LogFile}
	if cfg.App.Debug != nil {
		log.Debug = *cfg.App.Debug
	}
	if cfg.App.LogLevel != "" {
		log.Level = strings.ToLower(cfg.App.LogLevel)
	}

	clientCfg := &ClientConfig{
		Env:     env,
		Profile: profile,
		Adapter: ClientAdapter{
			BaseURL:        baseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      cfg.Adapter.RateBurst,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{SessionCheckInterval: cfg.Workers.SessionCheckInterval},
		Log:     log,
	}

	return clientCfg, clientCfg.validate()
}
