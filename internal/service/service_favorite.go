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

type favoriteService struct {
	favorites adapter.FavoriteAPI
	validator validators.Validator
}

func NewFavoriteService(favorites adapter.FavoriteAPI, validator validators.Validator) FavoriteService {
	return &favoriteService{favorites: favorites, validator: validator}
}

func (f *favoriteService) Toggle(ctx context.Context, postID int64) (models.FavoriteResponse, error) {
	if err := f.validator.Validate(ctx, models.ToggleFavoriteRequest{PostID: postID}); err != nil {
		return models.FavoriteResponse{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return f.favorites.Toggle(ctx, postID)
}

func (f *favoriteService) List(ctx context.Context) (models.FavoriteListResponse, error) {
	return f.favorites.List(ctx)
}
