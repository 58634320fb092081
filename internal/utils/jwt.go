// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog-client/models"
	"github.com/golang-jwt/jwt/v5"
)

// ParseClaimsUnverified decodes the claims of a session token without
// checking its signature. The client has no signing key, it only needs to
// know who is logged in and when the token runs out.
func ParseClaimsUnverified(tokenString string) (models.Claims, error) {
	if strings.TrimSpace(tokenString) == "" {
		return models.Claims{}, errors.New("empty token")
	}

	var claims models.Claims
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, &claims); err != nil {
		return models.Claims{}, fmt.Errorf("error occurred parsing token claims: %w", err)
	}

	return claims, nil
}

// SignClaims signs claims with HMAC-SHA256. The client never signs anything
// it sends; this is how fake backends mint tokens.
func SignClaims(claims models.Claims, signKey string) (string, error) {
	if signKey == "" {
		return "", errors.New("invalid params for signing JWT token")
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing JWT token: %w", err)
	}
	return signed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
