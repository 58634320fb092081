// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MKhiriev/go-blog-client/internal/config"
	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKeyValueStore(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	_, err := kv.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(ctx, "k", "v1"))
	require.NoError(t, kv.Set(ctx, "k", "v2"))

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)

	require.NoError(t, kv.Remove(ctx, "k"))
	require.NoError(t, kv.Remove(ctx, "k"))

	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryKeyValueStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = kv.Set(ctx, models.TokenKey, "token")
		}()
		go func() {
			defer wg.Done()
			_, _ = kv.Get(ctx, models.TokenKey)
		}()
	}
	wg.Wait()

	got, err := kv.Get(ctx, models.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "token", got)
}

func TestTokenStorage_Lifecycle(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValueStore()
	tokens := NewTokenStorage(kv)

	token, err := tokens.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token, "no token yet")

	require.NoError(t, tokens.SetToken(ctx, "header.payload.sig"))

	token, err = tokens.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "header.payload.sig", token)

	raw, err := kv.Get(ctx, "jwt_token")
	require.NoError(t, err)
	assert.Equal(t, "header.payload.sig", raw, "token lives under the fixed key")

	require.NoError(t, tokens.ClearToken(ctx))
	require.NoError(t, tokens.ClearToken(ctx), "clearing twice is fine")

	token, err = tokens.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingStore) Set(context.Context, string, string) error   { return f.err }
func (f failingStore) Remove(context.Context, string) error        { return f.err }

func TestTokenStorage_PropagatesErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	tokens := NewTokenStorage(failingStore{err: boom})

	_, err := tokens.Token(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, tokens.SetToken(ctx, "x"), boom)
	assert.ErrorIs(t, tokens.ClearToken(ctx), boom)
}

func TestNewClientStorages_Memory(t *testing.T) {
	s, err := NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: config.MemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, s.KeyValue)
	require.NotNil(t, s.Tokens)

	require.NoError(t, s.Tokens.SetToken(context.Background(), "t"))
	got, err := s.KeyValue.Get(context.Background(), models.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "t", got)

	assert.NoError(t, s.Close())
}
