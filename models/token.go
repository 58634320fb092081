// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKey is the fixed local storage key under which the session JWT is kept.
const TokenKey = "jwt_token"

// Claims is the claim set the blog backend signs into every session token.
// The subject holds the numeric user id.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Session is the client's view of the stored token. It is decoded without
// signature verification: the backend remains the authority, the client only
// uses it to show who is logged in and to drop expired tokens early.
type Session struct {
	UserID    int64
	Username  string
	Role      string
	ExpiresAt time.Time
}

// Expired reports whether the session expiry lies before now. A session
// without an expiry never expires on the client side.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionFromClaims converts decoded claims into a [Session]. A subject that
// is not a number yields UserID 0.
func SessionFromClaims(c Claims) Session {
	s := Session{Username: c.Username, Role: c.Role}
	if id, err := strconv.ParseInt(c.Subject, 10, 64); err == nil {
		s.UserID = id
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}
