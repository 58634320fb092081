// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_buildUpsertValueQuery(t *testing.T) {
	query, args, err := buildUpsertValueQuery("jwt_token", "abc")
	require.NoError(t, err)

	require.Equal(t, []any{"jwt_token", "abc"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into kv_store")
	require.Contains(t, q, "item_key")
	require.Contains(t, q, "current_timestamp")
	require.Contains(t, q, "on conflict(item_key) do update set")
	require.Contains(t, q, "item_value = excluded.item_value")

	// placeholder format should be ? (SQLite)
	require.Equal(t, 2, strings.Count(query, "?"))
	require.NotContains(t, query, "$1")
}

func Test_buildSelectValueQuery(t *testing.T) {
	query, args, err := buildSelectValueQuery("jwt_token")
	require.NoError(t, err)

	require.Equal(t, []any{"jwt_token"}, args)
	require.Equal(t, "SELECT item_value FROM kv_store WHERE item_key = ?", query)
}

func Test_buildDeleteValueQuery(t *testing.T) {
	query, args, err := buildDeleteValueQuery("jwt_token")
	require.NoError(t, err)

	require.Equal(t, []any{"jwt_token"}, args)
	require.Equal(t, "DELETE FROM kv_store WHERE item_key = ?", query)
}
