// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ToggleFavoriteRequest is the body of POST /post_fav.
type ToggleFavoriteRequest struct {
	PostID int64 `json:"post_id" validate:"gte=1"`
}

// FavoriteResponse is returned by POST /post_fav. Count is the number of
// users that favorited the post, when the backend reports it.
type FavoriteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   *int64 `json:"count,omitempty"`
}

// FavoriteListResponse is returned by GET /post_fav/my/list.
type FavoriteListResponse struct {
	Success        bool   `json:"success"`
	Favorites      []Post `json:"favorites"`
	TotalPages     uint64 `json:"total_pages"`
	CurrentPage    uint64 `json:"current_page"`
	TotalFavorites uint64 `json:"total_favorites"`
	Message        string `json:"message,omitempty"`
}
