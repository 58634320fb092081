// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-blog-client/internal/adapter"
	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/internal/store"
	"github.com/MKhiriev/go-blog-client/internal/validators"
)

type ClientServices struct {
	AuthService     AuthService
	PostService     PostService
	CommentService  CommentService
	FavoriteService FavoriteService
	AppInfoService  AppInfoService
}

func NewClientServices(api *adapter.API, tokens store.TokenStore, appInfo AppInfoService, logger *logger.Logger) *ClientServices {
	validator := validators.NewBlogValidator()

	return &ClientServices{
		AuthService:     NewAuthService(api.User, tokens, validator, logger),
		PostService:     NewPostService(api.Post, validator),
		CommentService:  NewCommentService(api.Comment, validator),
		FavoriteService: NewFavoriteService(api.Favorite, validator),
		AppInfoService:  appInfo,
	}
}
