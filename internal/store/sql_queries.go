// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable       = "kv_store"
	kvKeyColumn   = "item_key"
	kvValueColumn = "item_value"
	kvUpdatedAt   = "updated_at"
)

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildUpsertValueQuery inserts key or overwrites its value in one statement.
func buildUpsertValueQuery(key, value string) (string, []any, error) {
	return sqlite.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAt).
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
			kvValueColumn + " = excluded." + kvValueColumn + ", " +
			kvUpdatedAt + " = excluded." + kvUpdatedAt).
		ToSql()
}

func buildSelectValueQuery(key string) (string, []any, error) {
	return sqlite.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return sqlite.
		Delete(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
}
