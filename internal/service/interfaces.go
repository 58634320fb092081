// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the use cases the terminal UI and the command line
// call. Each service validates user input with [validators.Validator] and
// delegates to the matching adapter namespace; backend errors are passed
// through untouched so their message reaches the user.
package service

import (
	"context"

	"github.com/MKhiriev/go-blog-client/internal/config"
	"github.com/MKhiriev/go-blog-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages the account and the locally stored session.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)
	// Logout always drops the local session, see adapter.UserAPI.
	Logout(ctx context.Context) error
	Me(ctx context.Context) (models.User, error)
	UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (models.BaseResponse, error)

	// Session decodes the stored token. It returns ErrNotAuthenticated when
	// there is none, ErrInvalidSession when it can't be decoded, and the
	// session together with ErrSessionExpired once it has run out.
	Session(ctx context.Context) (models.Session, error)

	// ExpireSession removes a stored token that is expired or undecodable and
	// reports whether it did.
	ExpireSession(ctx context.Context) (bool, error)
}

// PostService manages posts.
type PostService interface {
	Create(ctx context.Context, draft models.PostDraft) (models.IDResponse, error)
	List(ctx context.Context, opts models.PostListOptions) (models.PostListResponse, error)
	Get(ctx context.Context, id int64) (models.Post, error)
	Update(ctx context.Context, id int64, draft models.PostDraft) (models.BaseResponse, error)
	Delete(ctx context.Context, id int64) (models.BaseResponse, error)
	Search(ctx context.Context, query string) (models.PostListResponse, error)
}

// CommentService manages comments.
type CommentService interface {
	Create(ctx context.Context, req models.CreateCommentRequest) (models.IDResponse, error)
	ListByPost(ctx context.Context, postID int64) (models.CommentListResponse, error)
	Get(ctx context.Context, id int64) (models.Comment, error)
	Update(ctx context.Context, id int64, req models.UpdateCommentRequest) (models.BaseResponse, error)
	Delete(ctx context.Context, id int64) (models.BaseResponse, error)
}

// FavoriteService manages the user's favorite posts.
type FavoriteService interface {
	Toggle(ctx context.Context, postID int64) (models.FavoriteResponse, error)
	List(ctx context.Context) (models.FavoriteListResponse, error)
}

// AppInfoService describes the running client.
type AppInfoService interface {
	BuildInfo() models.AppBuildInfo
	Environment() config.Environment
	Profile() config.Profile
	APIBaseURL() string
}
