// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-client/internal/adapter"
	"github.com/MKhiriev/go-blog-client/internal/config"
	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/internal/service"
	"github.com/MKhiriev/go-blog-client/internal/store"
	"github.com/MKhiriev/go-blog-client/internal/tui"
	"github.com/MKhiriev/go-blog-client/internal/workers"
	"github.com/MKhiriev/go-blog-client/models"
)

const role = "blog-client"

type App struct {
	cfg      *config.ClientConfig
	logger   *logger.Logger
	storages *store.ClientStorages
	services *service.ClientServices
}

var _ Client = (*App)(nil)

// NewApp builds the runtime described by cfg. The logger writes to
// cfg.Log.File because the terminal belongs to the UI.
func NewApp(cfg *config.ClientConfig, build models.AppBuildInfo) (*App, error) {
	log := logger.NewClientLogger(role, logger.LevelFor(cfg.Log.Debug, cfg.Log.Level), cfg.Log.File)
	return newApp(cfg, build, log)
}

func newApp(cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) (*App, error) {
	appInfo, err := service.NewAppInfoService(cfg, build)
	if err != nil {
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	api, err := adapter.NewAPI(cfg.Adapter, storages.Tokens, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create api client: %w", err)
	}

	log.Info().
		Str("env", string(cfg.Env)).
		Str("base_url", api.BaseURL()).
		Str("dsn", cfg.Storage.DB.DSN).
		Msg("client initialised")

	return &App{
		cfg:      cfg,
		logger:   log,
		storages: storages,
		services: service.NewClientServices(api, storages.Tokens, appInfo, log),
	}, nil
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

func (a *App) Logger() *logger.Logger {
	return a.logger
}

// Run starts the session watcher and the terminal UI and blocks until the UI
// exits.
func (a *App) Run(ctx context.Context) error {
	ui := tui.New(a.services, a.logger)

	w := workers.NewWorkers(
		workers.NewSessionWatcher(a.services.AuthService, a.cfg.Workers.SessionCheckInterval, ui.SessionExpired, a.logger),
	)
	w.Run(ctx)
	defer w.Stop()

	if err := ui.Run(ctx); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Close releases local storage.
func (a *App) Close() error {
	return a.storages.Close()
}
