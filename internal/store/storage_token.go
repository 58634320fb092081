// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-client/models"
)

// TokenStorage keeps the session token under models.TokenKey.
type TokenStorage struct {
	kv KeyValueStore
}

func NewTokenStorage(kv KeyValueStore) *TokenStorage {
	return &TokenStorage{kv: kv}
}

func (s *TokenStorage) Token(ctx context.Context) (string, error) {
	token, err := s.kv.Get(ctx, models.TokenKey)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return token, nil
}

func (s *TokenStorage) SetToken(ctx context.Context, token string) error {
	if err := s.kv.Set(ctx, models.TokenKey, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *TokenStorage) ClearToken(ctx context.Context) error {
	if err := s.kv.Remove(ctx, models.TokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
