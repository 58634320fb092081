// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the HTTP client of the blog backend.
//
// Every call goes through one request pipeline (see [Client]): the stored
// session token is read fresh and sent as a bearer token, bodies are JSON,
// and any non-2xx answer becomes an [*APIError] whose message is the
// backend's own "message" field when it has one. The error unwraps to a
// status sentinel from errors.go so callers can use [errors.Is].
//
// There are no retries. A failed call is reported once and left to the
// caller.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// UserAPI covers /user endpoints.
type UserAPI interface {
	// Register creates an account. A token in the response is stored.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login sends username_or_email (falling back to Username) and password.
	// A token in the response is stored.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	// Logout notifies the backend and clears the stored token whether or not
	// the call succeeded. The call's error is still returned.
	Logout(ctx context.Context) error

	Me(ctx context.Context) (models.UserInfoResponse, error)
	UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (models.BaseResponse, error)
}

// PostAPI covers /post endpoints.
type PostAPI interface {
	Create(ctx context.Context, draft models.PostDraft) (models.IDResponse, error)
	// List applies page=1, limit=10 and published_only=true unless opts say
	// otherwise.
	List(ctx context.Context, opts models.PostListOptions) (models.PostListResponse, error)
	Get(ctx context.Context, id int64) (models.Post, error)
	Update(ctx context.Context, id int64, draft models.PostDraft) (models.BaseResponse, error)
	Delete(ctx context.Context, id int64) (models.BaseResponse, error)
	Search(ctx context.Context, query string) (models.PostListResponse, error)
}

// CommentAPI covers /comment and /post/{id}/comments.
type CommentAPI interface {
	Create(ctx context.Context, req models.CreateCommentRequest) (models.IDResponse, error)
	ListByPost(ctx context.Context, postID int64) (models.CommentListResponse, error)
	Get(ctx context.Context, id int64) (models.Comment, error)
	Update(ctx context.Context, id int64, req models.UpdateCommentRequest) (models.BaseResponse, error)
	Delete(ctx context.Context, id int64) (models.BaseResponse, error)
}

// FavoriteAPI covers /post_fav.
type FavoriteAPI interface {
	Toggle(ctx context.Context, postID int64) (models.FavoriteResponse, error)
	List(ctx context.Context) (models.FavoriteListResponse, error)
}
