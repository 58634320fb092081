// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the config file. JSON and
// YAML share the same keys.
type StructuredFileConfig struct {
	App struct {
		Env      string `json:"env" yaml:"env"`
		Debug    *bool  `json:"debug" yaml:"debug"`
		LogLevel string `json:"log_level" yaml:"log_level"`
		LogFile  string `json:"log_file" yaml:"log_file"`
	} `json:"app,omitempty" yaml:"app"`

	Adapter struct {
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		Origin         string   `json:"origin" yaml:"origin"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		RateLimit      float64  `json:"rate_limit" yaml:"rate_limit"`
		RateBurst      int      `json:"rate_burst" yaml:"rate_burst"`
	} `json:"adapter,omitempty" yaml:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db"`
	} `json:"storage,omitempty" yaml:"storage"`

	Workers struct {
		SessionCheckInterval Duration `json:"session_check_interval" yaml:"session_check_interval"`
	} `json:"workers,omitempty" yaml:"workers"`
}

// parseFile reads a config file. The decoder is picked by extension: .yaml
// and .yml use YAML, everything else JSON.
func parseFile(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(raw, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Env:      fileCfg.App.Env,
			Debug:    fileCfg.App.Debug,
			LogLevel: fileCfg.App.LogLevel,
			LogFile:  fileCfg.App.LogFile,
		},
		Adapter: Adapter{
			BaseURL:        fileCfg.Adapter.BaseURL,
			Origin:         fileCfg.Adapter.Origin,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
			RateLimit:      fileCfg.Adapter.RateLimit,
			RateBurst:      fileCfg.Adapter.RateBurst,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			SessionCheckInterval: time.Duration(fileCfg.Workers.SessionCheckInterval),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if tmp, err := time.ParseDuration(s); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(time.Duration(n))
	return nil
}
