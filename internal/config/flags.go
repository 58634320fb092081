// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strconv"

	"github.com/spf13/pflag"
)

// RegisterFlags registers all configuration flags on fs and returns the
// config they populate once fs has been parsed.
//
// Flags:
//
//	-c/--config                 config file path (.json, .yaml, .yml)
//	-e/--env                    environment: development, production, test
//	--debug                     force debug logging on or off
//	--log-level                 debug, info, warn or error
//	--log-file                  log file path
//	--base-url                  API base URL, replaces the profile value
//	--origin                    origin used by the production profile
//	--request-timeout           request timeout (e.g. "10s")
//	--rate-limit                max requests per second, 0 disables
//	--rate-burst                limiter burst size
//	-d/--dsn                    local storage DSN
//	--session-check-interval    token expiry check interval (e.g. "1m")
func RegisterFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "Config file path (.json, .yaml, .yml)")
	fs.StringVarP(&cfg.App.Env, "env", "e", "", "Environment: development, production or test")
	fs.Var(&optionalBool{target: &cfg.App.Debug}, "debug", "Force debug logging on or off")
	fs.Lookup("debug").NoOptDefVal = "true"
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Adapter.BaseURL, "base-url", "", "API base URL (overrides the environment profile)")
	fs.StringVar(&cfg.Adapter.Origin, "origin", "", "Site origin for the production profile")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 10s)")
	fs.Float64Var(&cfg.Adapter.RateLimit, "rate-limit", 0, "Max requests per second, 0 disables limiting")
	fs.IntVar(&cfg.Adapter.RateBurst, "rate-burst", 0, "Rate limiter burst size")
	fs.StringVarP(&cfg.Storage.DB.DSN, "dsn", "d", "", "Local storage DSN, :memory: keeps nothing on disk")
	fs.DurationVar(&cfg.Workers.SessionCheckInterval, "session-check-interval", 0, "Session expiry check interval (e.g. 1m)")

	return cfg
}

// optionalBool is a tri-state bool flag: unset flags leave the target nil so
// that the profile value survives the merge.
type optionalBool struct {
	target **bool
}

func (o *optionalBool) String() string {
	if o.target == nil || *o.target == nil {
		return ""
	}
	return strconv.FormatBool(**o.target)
}

func (o *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*o.target = &v
	return nil
}

func (o *optionalBool) Type() string {
	return "bool"
}
