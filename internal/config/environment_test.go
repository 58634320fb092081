// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFor_KnownEnvironments(t *testing.T) {
	dev := ProfileFor("development")
	assert.Equal(t, "/api", dev.APIBaseURL)
	assert.Equal(t, "http://localhost:5173", dev.FrontendURL)
	assert.Equal(t, "http://localhost:3000", dev.BackendURL)
	assert.True(t, dev.Debug)
	assert.Equal(t, "debug", dev.LogLevel)

	prod := ProfileFor("production")
	assert.Equal(t, "/api", prod.APIBaseURL)
	assert.Empty(t, prod.FrontendURL)
	assert.Empty(t, prod.BackendURL)
	assert.False(t, prod.Debug)
	assert.Equal(t, "error", prod.LogLevel)

	test := ProfileFor("test")
	assert.Equal(t, "http://localhost:3000/api", test.APIBaseURL)
	assert.True(t, test.Debug)
	assert.Equal(t, "info", test.LogLevel)
}

func TestProfileFor_UnknownFallsBackToDevelopment(t *testing.T) {
	for _, name := range []string{"", "staging", "PRODUCTION", " test"} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, ProfileFor("development"), ProfileFor(name))
			assert.Equal(t, Development, ParseEnvironment(name))
		})
	}
}

func TestProfileFor_IsPure(t *testing.T) {
	first := ProfileFor("test")
	first.APIBaseURL = "mutated"

	assert.Equal(t, "http://localhost:3000/api", ProfileFor("test").APIBaseURL)
}

func TestEnvironmentPredicates(t *testing.T) {
	assert.True(t, IsDevelopment("development"))
	assert.True(t, IsDevelopment("unknown"))
	assert.False(t, IsDevelopment("production"))

	assert.True(t, IsProduction("production"))
	assert.False(t, IsProduction("test"))

	assert.True(t, IsTest("test"))
	assert.False(t, IsTest(""))
}

func TestProfile_ResolveAPIBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    string
		wantErr error
	}{
		{
			name:    "relative path joined onto backend",
			profile: ProfileFor("development"),
			want:    "http://localhost:3000/api",
		},
		{
			name:    "absolute url used as is",
			profile: ProfileFor("test"),
			want:    "http://localhost:3000/api",
		},
		{
			name:    "trailing slashes trimmed",
			profile: Profile{APIBaseURL: "/api/", BackendURL: "https://blog.example/"},
			want:    "https://blog.example/api",
		},
		{
			name:    "production without origin",
			profile: ProfileFor("production"),
			wantErr: ErrOriginRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.profile.ResolveAPIBaseURL()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProfile_WithOrigin(t *testing.T) {
	prod := ProfileFor("production").WithOrigin("https://blog.example/")
	assert.Equal(t, "https://blog.example", prod.FrontendURL)
	assert.Equal(t, "https://blog.example", prod.BackendURL)

	url, err := prod.ResolveAPIBaseURL()
	require.NoError(t, err)
	assert.Equal(t, "https://blog.example/api", url)

	dev := ProfileFor("development").WithOrigin("https://blog.example")
	assert.Equal(t, "http://localhost:3000", dev.BackendURL, "fixed profile values are kept")

	assert.Equal(t, ProfileFor("production"), ProfileFor("production").WithOrigin("  "))
}
