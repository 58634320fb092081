// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-blog-client/models"
)

type favoriteAPI struct {
	*Client
}

func (f *favoriteAPI) Toggle(ctx context.Context, postID int64) (models.FavoriteResponse, error) {
	var resp models.FavoriteResponse
	body := models.ToggleFavoriteRequest{PostID: postID}
	if err := f.do(ctx, request{method: http.MethodPost, path: "/post_fav", body: body}, &resp); err != nil {
		return models.FavoriteResponse{}, err
	}
	return resp, nil
}

func (f *favoriteAPI) List(ctx context.Context) (models.FavoriteListResponse, error) {
	var resp models.FavoriteListResponse
	if err := f.do(ctx, request{method: http.MethodGet, path: "/post_fav/my/list"}, &resp); err != nil {
		return models.FavoriteListResponse{}, err
	}
	return resp, nil
}
