// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-client/internal/adapter"
	"github.com/MKhiriev/go-blog-client/internal/validators"
	"github.com/MKhiriev/go-blog-client/models"
)

type postService struct {
	posts     adapter.PostAPI
	validator validators.Validator
}

func NewPostService(posts adapter.PostAPI, validator validators.Validator) PostService {
	return &postService{posts: posts, validator: validator}
}

func (p *postService) Create(ctx context.Context, draft models.PostDraft) (models.IDResponse, error) {
	if err := p.validator.Validate(ctx, draft); err != nil {
		return models.IDResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return p.posts.Create(ctx, draft)
}

func (p *postService) List(ctx context.Context, opts models.PostListOptions) (models.PostListResponse, error) {
	return p.posts.List(ctx, opts)
}

func (p *postService) Get(ctx context.Context, id int64) (models.Post, error) {
	if err := p.validator.Validate(ctx, id); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return p.posts.Get(ctx, id)
}

func (p *postService) Update(ctx context.Context, id int64, draft models.PostDraft) (models.BaseResponse, error) {
	if err := p.validator.Validate(ctx, id); err != nil {
		return models.BaseResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := p.validator.Validate(ctx, draft.Payload()); err != nil {
		return models.BaseResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return p.posts.Update(ctx, id, draft)
}

func (p *postService) Delete(ctx context.Context, id int64) (models.BaseResponse, error) {
	if err := p.validator.Validate(ctx, id); err != nil {
		return models.BaseResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return p.posts.Delete(ctx, id)
}

func (p *postService) Search(ctx context.Context, query string) (models.PostListResponse, error) {
	return p.posts.Search(ctx, query)
}
