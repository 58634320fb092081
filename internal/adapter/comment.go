// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-client/models"
)

type commentAPI struct {
	*Client
}

func commentPath(id int64) string {
	return fmt.Sprintf("/comment/%d", id)
}

func (c *commentAPI) Create(ctx context.Context, req models.CreateCommentRequest) (models.IDResponse, error) {
	var resp models.IDResponse
	if err := c.do(ctx, request{method: http.MethodPost, path: "/comment", body: req}, &resp); err != nil {
		return models.IDResponse{}, err
	}
	return resp, nil
}

func (c *commentAPI) ListByPost(ctx context.Context, postID int64) (models.CommentListResponse, error) {
	var resp models.CommentListResponse
	path := fmt.Sprintf("/post/%d/comments", postID)
	if err := c.do(ctx, request{method: http.MethodGet, path: path}, &resp); err != nil {
		return models.CommentListResponse{}, err
	}
	return resp, nil
}

func (c *commentAPI) Get(ctx context.Context, id int64) (models.Comment, error) {
	var resp models.Comment
	if err := c.do(ctx, request{method: http.MethodGet, path: commentPath(id)}, &resp); err != nil {
		return models.Comment{}, err
	}
	return resp, nil
}

func (c *commentAPI) Update(ctx context.Context, id int64, req models.UpdateCommentRequest) (models.BaseResponse, error) {
	var resp models.BaseResponse
	if err := c.do(ctx, request{method: http.MethodPut, path: commentPath(id), body: req}, &resp); err != nil {
		return models.BaseResponse{}, err
	}
	return resp, nil
}

func (c *commentAPI) Delete(ctx context.Context, id int64) (models.BaseResponse, error) {
	var resp models.BaseResponse
	if err := c.do(ctx, request{method: http.MethodDelete, path: commentPath(id)}, &resp); err != nil {
		return models.BaseResponse{}, err
	}
	return resp, nil
}
