// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-client/internal/config"
	"github.com/MKhiriev/go-blog-client/internal/logger"
)

// ClientStorages groups the client-side storage layer.
type ClientStorages struct {
	// KeyValue is the local-storage analogue. SQLite-backed unless the DSN
	// is config.MemoryDSN.
	KeyValue KeyValueStore

	// Tokens persists the session token on top of KeyValue.
	Tokens *TokenStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. for config.MemoryDSN it uses a process-local map and stops there;
//  2. otherwise it opens the SQLite file named by cfg.DB.DSN, creating it if
//     needed;
//  3. runs pending schema migrations via [DB.Migrate].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.DSN == config.MemoryDSN {
		kv := NewMemoryKeyValueStore()
		return &ClientStorages{KeyValue: kv, Tokens: NewTokenStorage(kv)}, nil
	}

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKeyValueRepository(db, logger)
	return &ClientStorages{
		KeyValue: kv,
		Tokens:   NewTokenStorage(kv),
		db:       db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
