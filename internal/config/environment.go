// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
)

// Environment names one of the static client profiles.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Test        Environment = "test"
)

// Profile is the static per-environment client configuration.
type Profile struct {
	// APIBaseURL is either absolute or a path (starting with "/") that is
	// resolved against BackendURL.
	APIBaseURL string
	// FrontendURL is the public address of the blog UI. Used to build
	// shareable links to posts.
	FrontendURL string
	// BackendURL is the address of the API server.
	BackendURL string
	// Debug enables debug, info and warn logging.
	Debug bool
	// LogLevel is the lowest level emitted while Debug is on.
	LogLevel string
}

// profiles is keyed by environment. Production has no fixed origin; it is
// supplied through configuration, see [Profile.WithOrigin].
var profiles = map[Environment]Profile{
	Development: {
		APIBaseURL:  "/api",
		FrontendURL: "http://localhost:5173",
		BackendURL:  "http://localhost:3000",
		Debug:       true,
		LogLevel:    "debug",
	},
	Production: {
		APIBaseURL: "/api",
		Debug:      false,
		LogLevel:   "error",
	},
	Test: {
		APIBaseURL:  "http://localhost:3000/api",
		FrontendURL: "http://localhost:5173",
		BackendURL:  "http://localhost:3000",
		Debug:       true,
		LogLevel:    "info",
	},
}

// ParseEnvironment maps an environment name onto a known [Environment].
// Unknown and empty names fall back to [Development].
func ParseEnvironment(name string) Environment {
	env := Environment(name)
	if _, ok := profiles[env]; ok {
		return env
	}
	return Development
}

// ProfileFor returns the profile of the named environment, defaulting to the
// development profile for unrecognised names. It depends on nothing but its
// argument.
func ProfileFor(name string) Profile {
	return profiles[ParseEnvironment(name)]
}

// IsDevelopment reports whether name selects the development profile.
func IsDevelopment(name string) bool { return ParseEnvironment(name) == Development }

// IsProduction reports whether name selects the production profile.
func IsProduction(name string) bool { return ParseEnvironment(name) == Production }

// IsTest reports whether name selects the test profile.
func IsTest(name string) bool { return ParseEnvironment(name) == Test }

// WithOrigin fills FrontendURL and BackendURL with origin where the profile
// leaves them empty. The development and test profiles are unaffected.
func (p Profile) WithOrigin(origin string) Profile {
	origin = strings.TrimRight(strings.TrimSpace(origin), "/")
	if origin == "" {
		return p
	}
	if p.FrontendURL == "" {
		p.FrontendURL = origin
	}
	if p.BackendURL == "" {
		p.BackendURL = origin
	}
	return p
}

// ResolveAPIBaseURL returns the absolute API base URL. A path-only
// APIBaseURL is appended to BackendURL; if BackendURL is unknown the result
// is [ErrOriginRequired].
func (p Profile) ResolveAPIBaseURL() (string, error) {
	base := strings.TrimSpace(p.APIBaseURL)
	if !strings.HasPrefix(base, "/") {
		return strings.TrimRight(base, "/"), nil
	}
	if p.BackendURL == "" {
		return "", ErrOriginRequired
	}
	return strings.TrimRight(p.BackendURL, "/") + strings.TrimRight(base, "/"), nil
}
