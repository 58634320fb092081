// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type envOutput struct {
	Env         string  `json:"env"`
	APIBaseURL  string  `json:"api_base_url"`
	FrontendURL string  `json:"frontend_url"`
	BackendURL  string  `json:"backend_url"`
	Debug       bool    `json:"debug"`
	LogLevel    string  `json:"log_level"`
	LogFile     string  `json:"log_file,omitempty"`
	DSN         string  `json:"dsn"`
	Timeout     string  `json:"request_timeout"`
	RateLimit   float64 `json:"rate_limit"`
	RateBurst   int     `json:"rate_burst"`
	SessionTick string  `json:"session_check_interval"`
}

func newEnvCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := r.config()
			if err != nil {
				return err
			}

			return printJSON(cmd, envOutput{
				Env:         string(cfg.Env),
				APIBaseURL:  cfg.Adapter.BaseURL,
				FrontendURL: cfg.Profile.FrontendURL,
				BackendURL:  cfg.Profile.BackendURL,
				Debug:       cfg.Log.Debug,
				LogLevel:    cfg.Log.Level,
				LogFile:     cfg.Log.File,
				DSN:         cfg.Storage.DB.DSN,
				Timeout:     cfg.Adapter.RequestTimeout.String(),
				RateLimit:   cfg.Adapter.RateLimit,
				RateBurst:   cfg.Adapter.RateBurst,
				SessionTick: cfg.Workers.SessionCheckInterval.String(),
			})
		},
	}
}

func newVersionCommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			build := r.build.WithDefaults()
			fmt.Fprintf(out, "Build version: %s\n", build.BuildVersion())
			fmt.Fprintf(out, "Build date: %s\n", build.BuildDate())
			fmt.Fprintf(out, "Build commit: %s\n", build.BuildCommit())
			return nil
		},
	}
}
