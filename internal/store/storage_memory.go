// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memoryKeyValueStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryKeyValueStore returns a KeyValueStore that forgets everything when
// the process exits.
func NewMemoryKeyValueStore() KeyValueStore {
	return &memoryKeyValueStore{items: make(map[string]string)}
}

func (m *memoryKeyValueStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.items[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

func (m *memoryKeyValueStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.items[key] = value
	m.mu.Unlock()
	return nil
}

func (m *memoryKeyValueStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}
