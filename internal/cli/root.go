// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli is the command line of the blog client. With no subcommand it
// starts the terminal UI; every other command runs one API call and prints
// the result as indented JSON.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-blog-client/internal/client"
	"github.com/MKhiriev/go-blog-client/internal/config"
	"github.com/MKhiriev/go-blog-client/models"
	"github.com/spf13/cobra"
)

// runtime is shared by all commands of one invocation. The app is built on
// first use so that commands like version work without a config.
type runtime struct {
	flags *config.StructuredConfig
	build models.AppBuildInfo

	cfg *config.ClientConfig
	app *client.App
}

func (r *runtime) config() (*config.ClientConfig, error) {
	if r.cfg != nil {
		return r.cfg, nil
	}

	cfg, err := config.GetClientConfig(r.flags)
	if err != nil {
		return nil, err
	}
	r.cfg = cfg
	return cfg, nil
}

func (r *runtime) client() (*client.App, error) {
	if r.app != nil {
		return r.app, nil
	}

	cfg, err := r.config()
	if err != nil {
		return nil, err
	}

	app, err := client.NewApp(cfg, r.build)
	if err != nil {
		return nil, err
	}
	r.app = app
	return app, nil
}

func (r *runtime) close() error {
	if r.app == nil {
		return nil
	}
	return r.app.Close()
}

// Execute runs the command line with os.Args and releases the local storage
// afterwards.
func Execute(ctx context.Context, build models.AppBuildInfo) error {
	r := &runtime{build: build}
	defer func() {
		_ = r.close()
	}()

	return newRootCommand(r).ExecuteContext(ctx)
}

func newRootCommand(r *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:   "blog",
		Short: "Terminal client for the blog platform",
		Long: `blog talks to the blog backend over its REST API.

Run without a command to open the interactive terminal UI. The other commands
perform a single call and print the JSON result, which makes them easy to
script.

Configuration is read from an optional JSON/YAML file, then environment
variables (APP_ENV, ADAPTER_BASE_URL, STORAGE_DB_DSN, ...), then flags.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, r)
		},
	}
	r.flags = config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newTUICommand(r),
		newEnvCommand(r),
		newVersionCommand(r),
		newRegisterCommand(r),
		newLoginCommand(r),
		newLogoutCommand(r),
		newMeCommand(r),
		newSessionCommand(r),
		newPostCommand(r),
		newCommentCommand(r),
		newFavoriteCommand(r),
	)

	return root
}

func newTUICommand(r *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, r)
		},
	}
}

func runTUI(cmd *cobra.Command, r *runtime) error {
	app, err := r.client()
	if err != nil {
		return err
	}
	return app.Run(cmd.Context())
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a number", s)
	}
	return id, nil
}
