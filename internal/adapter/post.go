// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-blog-client/models"
)

type postAPI struct {
	*Client
}

func postPath(id int64) string {
	return fmt.Sprintf("/post/%d", id)
}

func (p *postAPI) Create(ctx context.Context, draft models.PostDraft) (models.IDResponse, error) {
	var resp models.IDResponse
	if err := p.do(ctx, request{method: http.MethodPost, path: "/post", body: draft.Payload()}, &resp); err != nil {
		return models.IDResponse{}, err
	}
	return resp, nil
}

func (p *postAPI) List(ctx context.Context, opts models.PostListOptions) (models.PostListResponse, error) {
	var resp models.PostListResponse
	if err := p.do(ctx, request{method: http.MethodGet, path: "/post", query: listQuery(opts)}, &resp); err != nil {
		return models.PostListResponse{}, err
	}
	return resp, nil
}

func listQuery(opts models.PostListOptions) url.Values {
	opts = opts.Normalize()

	q := url.Values{}
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("limit", strconv.Itoa(opts.Limit))
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	if opts.Query != "" {
		q.Set("query", opts.Query)
	}
	q.Set("published_only", strconv.FormatBool(*opts.PublishedOnly))
	if opts.AuthorID > 0 {
		q.Set("author_id", strconv.FormatInt(opts.AuthorID, 10))
	}
	return q
}

func (p *postAPI) Get(ctx context.Context, id int64) (models.Post, error) {
	var resp models.Post
	if err := p.do(ctx, request{method: http.MethodGet, path: postPath(id)}, &resp); err != nil {
		return models.Post{}, err
	}
	return resp, nil
}

func (p *postAPI) Update(ctx context.Context, id int64, draft models.PostDraft) (models.BaseResponse, error) {
	var resp models.BaseResponse
	if err := p.do(ctx, request{method: http.MethodPut, path: postPath(id), body: draft.Payload()}, &resp); err != nil {
		return models.BaseResponse{}, err
	}
	return resp, nil
}

func (p *postAPI) Delete(ctx context.Context, id int64) (models.BaseResponse, error) {
	var resp models.BaseResponse
	if err := p.do(ctx, request{method: http.MethodDelete, path: postPath(id)}, &resp); err != nil {
		return models.BaseResponse{}, err
	}
	return resp, nil
}

func (p *postAPI) Search(ctx context.Context, query string) (models.PostListResponse, error) {
	var resp models.PostListResponse
	r := request{method: http.MethodGet, path: "/post/search", query: url.Values{"q": {query}}}
	if err := p.do(ctx, r, &resp); err != nil {
		return models.PostListResponse{}, err
	}
	return resp, nil
}
