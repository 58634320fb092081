// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-client/internal/logger"
)

type keyValueRepository struct {
	*DB
	logger *logger.Logger
}

// NewKeyValueRepository returns a KeyValueStore persisted in the kv_store
// table of db.
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueStore {
	return &keyValueRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildSelectValueQuery(key)
	if err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Get").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Get").
			Str("key", key).
			Msg("failed to read value")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertValueQuery(key, value)
	if err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Set").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Set").
			Str("key", key).
			Msg("failed to execute upsert")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *keyValueRepository) Remove(ctx context.Context, key string) error {
	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		r.logger.Err(err).Str("func", "keyValueRepository.Remove").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "keyValueRepository.Remove").
			Str("key", key).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
