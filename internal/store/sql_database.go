// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-blog-client/internal/logger"
	"github.com/MKhiriev/go-blog-client/migrations"
)

// DB wraps the SQLite connection used by the local repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the local schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
