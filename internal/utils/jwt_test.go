// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-client/models"
	"github.com/golang-jwt/jwt/v5"
)

func TestSignAndParseClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := SignClaims(models.Claims{
		Username: "alice",
		Role:     "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}, "secret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	claims, err := ParseClaimsUnverified(signed)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if claims.Username != "alice" {
		t.Errorf("expected username 'alice', got '%s'", claims.Username)
	}
	if claims.Role != "user" {
		t.Errorf("expected role 'user', got '%s'", claims.Role)
	}
	if claims.Subject != "7" {
		t.Errorf("expected subject '7', got '%s'", claims.Subject)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Time.Equal(exp) {
		t.Errorf("expected exp %v, got %v", exp, claims.ExpiresAt)
	}
}

func TestParseClaimsUnverified_IgnoresSignatureAndExpiry(t *testing.T) {
	signed, err := SignClaims(models.Claims{
		Username: "bob",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}, "some-other-key")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	claims, err := ParseClaimsUnverified(signed)
	if err != nil {
		t.Fatalf("expired or foreign-signed token must still decode, got: %v", err)
	}
	if claims.Username != "bob" {
		t.Errorf("expected username 'bob', got '%s'", claims.Username)
	}
}

func TestParseClaimsUnverified_Invalid(t *testing.T) {
	for _, token := range []string{"", "   ", "not-a-jwt", "a.b.c"} {
		if _, err := ParseClaimsUnverified(token); err == nil {
			t.Errorf("expected error for %q", token)
		}
	}
}

func TestSignClaims_EmptyKey(t *testing.T) {
	if _, err := SignClaims(models.Claims{}, ""); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc", want: "abc"},
		{header: "  Bearer abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.header)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: unexpected error %v", tt.header, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected '%s', got '%s'", tt.header, tt.want, got)
		}
	}
}
