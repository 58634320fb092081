// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidInput wraps a validation failure; nothing was sent.
	ErrInvalidInput = errors.New("invalid input")

	ErrNotAuthenticated = errors.New("not logged in")
	ErrSessionExpired   = errors.New("session expired")
	ErrInvalidSession   = errors.New("stored session token is invalid")

	// ErrEmptyResponse is returned when a 2xx answer lacks the expected
	// resource.
	ErrEmptyResponse = errors.New("empty response from server")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
