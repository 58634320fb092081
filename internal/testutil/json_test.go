// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "backend error body",
			data:     map[string]string{"message": "Post not found"},
			status:   http.StatusNotFound,
			wantBody: `{"message":"Post not found"}`,
		},
		{
			name: "post list envelope",
			data: map[string]any{
				"success": true,
				"posts":   []map[string]any{{"id": 1, "title": "hello"}},
			},
			status:   http.StatusOK,
			wantBody: `{"success":true,"posts":[{"id":1,"title":"hello"}]}`,
		},
		{
			name:     "nil",
			data:     nil,
			status:   http.StatusOK,
			wantBody: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.Equal(t, w.Body.Len(), n)
		})
	}
}

func TestWriteJSON_Unmarshallable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestJSONHandler(t *testing.T) {
	w := httptest.NewRecorder()

	JSONHandler(http.StatusConflict, map[string]string{"message": "Username taken"}).
		ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/user/register", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"message":"Username taken"}`, w.Body.String())
}
