// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it is sent to the backend.
//
// Rules mirror the backend's own: usernames are 3 to 20 characters, emails
// must be well-formed, passwords have at least 6 characters, post titles
// at most 255, categories at most 50, comments 1 to 1000 characters, and
// resource ids are positive. Validation is a convenience for the user; the
// backend stays the authority and payloads it returns are never validated.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named struct fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
