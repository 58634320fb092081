// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-blog-client/internal/config"
	"github.com/MKhiriev/go-blog-client/models"
)

type appInfoService struct {
	build models.AppBuildInfo
	cfg   *config.ClientConfig
}

func NewAppInfoService(cfg *config.ClientConfig, build models.AppBuildInfo) (AppInfoService, error) {
	if build.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{build: build, cfg: cfg}, nil
}

func (s *appInfoService) BuildInfo() models.AppBuildInfo {
	return s.build
}

func (s *appInfoService) Environment() config.Environment {
	return s.cfg.Env
}

func (s *appInfoService) Profile() config.Profile {
	return s.cfg.Profile
}

func (s *appInfoService) APIBaseURL() string {
	return s.cfg.Adapter.BaseURL
}
