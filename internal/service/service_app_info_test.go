// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/MKhiriev/go-blog-client/internal/config"
	"github.com/MKhiriev/go-blog-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	cfg := &config.ClientConfig{
		Env:     config.Test,
		Profile: config.ProfileFor("test"),
		Adapter: config.ClientAdapter{BaseURL: "http://localhost:3000/api"},
	}

	svc, err := NewAppInfoService(cfg, models.NewAppBuildInfo("1.2.3", "2026-01-01", "abc"))
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", svc.BuildInfo().BuildVersion())
	assert.Equal(t, config.Test, svc.Environment())
	assert.True(t, svc.Profile().Debug)
	assert.Equal(t, "http://localhost:3000/api", svc.APIBaseURL())
}

func TestNewAppInfoService_NoVersion(t *testing.T) {
	_, err := NewAppInfoService(&config.ClientConfig{}, models.NewAppBuildInfo("", "", ""))
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
