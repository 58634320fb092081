// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-blog-client/internal/config"
	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/internal/service"
	"github.com/MKhiriev/go-blog-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dsn string) *config.ClientConfig {
	return &config.ClientConfig{
		Env:     config.Test,
		Profile: config.ProfileFor("test"),
		Adapter: config.ClientAdapter{BaseURL: "http://localhost:3000/api", RequestTimeout: config.DefaultRequestTimeout},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dsn}},
		Workers: config.ClientWorkers{SessionCheckInterval: config.DefaultSessionCheckInterval},
	}
}

func TestNewApp_Memory(t *testing.T) {
	app, err := newApp(testConfig(config.MemoryDSN), models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)
	defer app.Close()

	services := app.Services()
	require.NotNil(t, services)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.PostService)
	assert.NotNil(t, services.CommentService)
	assert.NotNil(t, services.FavoriteService)
	assert.Equal(t, "http://localhost:3000/api", services.AppInfoService.APIBaseURL())
	assert.NotNil(t, app.Logger())

	_, err = services.AuthService.Session(context.Background())
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestNewApp_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "client.db")

	app, err := newApp(testConfig(dsn), models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	require.NoError(t, err)

	_, err = app.Services().AuthService.Session(context.Background())
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
	assert.NoError(t, app.Close())
}

func TestNewApp_NoVersion(t *testing.T) {
	_, err := newApp(testConfig(config.MemoryDSN), models.NewAppBuildInfo("", "", ""), logger.Nop())
	assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}

func TestNewApp_EmptyBaseURL(t *testing.T) {
	cfg := testConfig(config.MemoryDSN)
	cfg.Adapter.BaseURL = "   "

	_, err := newApp(cfg, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	assert.Error(t, err)
}
