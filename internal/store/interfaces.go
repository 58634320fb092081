// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is a small durable string map, the terminal counterpart of
// browser local storage. Each call is atomic.
type KeyValueStore interface {
	// Get returns ErrKeyNotFound when key has never been set or was removed.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Remove is a no-op for absent keys.
	Remove(ctx context.Context, key string) error
}

// TokenStore keeps the single session token.
type TokenStore interface {
	// Token returns "" when no token is stored.
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}
