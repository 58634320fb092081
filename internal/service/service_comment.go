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

type commentService struct {
	comments  adapter.CommentAPI
	validator validators.Validator
}

func NewCommentService(comments adapter.CommentAPI, validator validators.Validator) CommentService {
	return &commentService{comments: comments, validator: validator}
}

func (c *commentService) Create(ctx context.Context, req models.CreateCommentRequest) (models.IDResponse, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.IDResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return c.comments.Create(ctx, req)
}

func (c *commentService) ListByPost(ctx context.Context, postID int64) (models.CommentListResponse, error) {
	if err := c.validator.Validate(ctx, postID); err != nil {
		return models.CommentListResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return c.comments.ListByPost(ctx, postID)
}

func (c *commentService) Get(ctx context.Context, id int64) (models.Comment, error) {
	if err := c.validator.Validate(ctx, id); err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return c.comments.Get(ctx, id)
}

func (c *commentService) Update(ctx context.Context, id int64, req models.UpdateCommentRequest) (models.BaseResponse, error) {
	if err := c.validator.Validate(ctx, id); err != nil {
		return models.BaseResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.BaseResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return c.comments.Update(ctx, id, req)
}

func (c *commentService) Delete(ctx context.Context, id int64) (models.BaseResponse, error) {
	if err := c.validator.Validate(ctx, id); err != nil {
		return models.BaseResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return c.comments.Delete(ctx, id)
}
