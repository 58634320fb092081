// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when configuration groups are incomplete or
// invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid HTTP client settings
	// (for example, a relative base URL or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty storage DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero session check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrOriginRequired is returned when a profile with a path-only API base
	// URL has no backend origin to resolve it against.
	ErrOriginRequired = errors.New("origin is required to resolve the api base url")
)
