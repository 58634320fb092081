// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBlogValidator_Register(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantMsg string
	}{
		{name: "valid", req: models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "secret1"}},
		{name: "short username", req: models.RegisterRequest{Username: "al", Email: "alice@example.com", Password: "secret1"}, wantMsg: "username must be at least 3 characters"},
		{name: "long username", req: models.RegisterRequest{Username: strings.Repeat("a", 21), Email: "alice@example.com", Password: "secret1"}, wantMsg: "username must be at most 20 characters"},
		{name: "bad email", req: models.RegisterRequest{Username: "alice", Email: "nope", Password: "secret1"}, wantMsg: "email must be a valid email address"},
		{name: "short password", req: models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "123"}, wantMsg: "password must be at least 6 characters"},
		{name: "missing password", req: models.RegisterRequest{Username: "alice", Email: "alice@example.com"}, wantMsg: "password is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestBlogValidator_MultipleErrorsJoined(t *testing.T) {
	err := NewBlogValidator().Validate(context.Background(), models.RegisterRequest{Username: "a", Email: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username must be at least 3 characters")
	assert.Contains(t, err.Error(), "; ")
}

func TestBlogValidator_Partial(t *testing.T) {
	v := NewBlogValidator()
	req := models.RegisterRequest{Username: "alice", Email: "broken"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldUsername))
	assert.Error(t, v.Validate(context.Background(), req, FieldEmail))
}

func TestBlogValidator_Credentials(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Credentials{UsernameOrEmail: "alice@example.com", Password: "pw"}))
	assert.NoError(t, v.Validate(ctx, models.Credentials{Username: "alice", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Password: "pw"}), ErrEmptyIdentifier)
	assert.ErrorIs(t, v.Validate(ctx, models.Credentials{Username: "   ", Password: "pw"}), ErrEmptyIdentifier)

	err := v.Validate(ctx, models.Credentials{Username: "alice"})
	require.Error(t, err)
	assert.Equal(t, "password is required", err.Error())
}

func TestBlogValidator_PostDraft(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PostDraft{Title: "Hello", Content: "body", Category: "go"}))
	assert.NoError(t, v.Validate(ctx, models.PostDraft{Title: "Hello", ContentMarkdown: "body", Category: "go"}))

	err := v.Validate(ctx, models.PostDraft{Title: "Hello", Category: "go"})
	require.Error(t, err)
	assert.Equal(t, "content is required", err.Error())

	err = v.Validate(ctx, models.PostDraft{Title: strings.Repeat("t", 256), Content: "b", Category: "go"})
	require.Error(t, err)
	assert.Equal(t, "title must be at most 255 characters", err.Error())

	err = v.Validate(ctx, models.PostDraft{Title: "t", Content: "b", Category: strings.Repeat("c", 51)})
	require.Error(t, err)
	assert.Equal(t, "category must be at most 50 characters", err.Error())
}

func TestBlogValidator_PostPayload(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.PostPayload{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.PostPayload{IsPublished: ptr(true)}))
	assert.Error(t, v.Validate(ctx, models.PostPayload{Title: strings.Repeat("t", 256)}))
}

func TestBlogValidator_UpdateProfile(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.UpdateProfileRequest{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, models.UpdateProfileRequest{Email: ptr("bob@example.com")}))

	err := v.Validate(ctx, models.UpdateProfileRequest{Password: ptr("123")})
	require.Error(t, err)
	assert.Equal(t, "password must be at least 6 characters", err.Error())
}

func TestBlogValidator_Comments(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.CreateCommentRequest{Content: "nice", PostID: 1}))

	err := v.Validate(ctx, models.CreateCommentRequest{Content: "nice"})
	require.Error(t, err)
	assert.Equal(t, "post_id must be at least 1", err.Error())

	err = v.Validate(ctx, models.UpdateCommentRequest{Content: strings.Repeat("x", 1001)})
	require.Error(t, err)
	assert.Equal(t, "content must be at most 1000 characters", err.Error())
}

func TestBlogValidator_IDs(t *testing.T) {
	v := NewBlogValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, int64(1)))
	assert.ErrorIs(t, v.Validate(ctx, int64(0)), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(ctx, int64(-5)), ErrInvalidID)
	assert.NoError(t, v.Validate(ctx, models.ToggleFavoriteRequest{PostID: 3}))
	assert.Error(t, v.Validate(ctx, models.ToggleFavoriteRequest{}))
}

func TestBlogValidator_UnsupportedType(t *testing.T) {
	err := NewBlogValidator().Validate(context.Background(), "just a string")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
