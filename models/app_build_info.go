// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable stands in for build values the linker did not set.
const NotAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into the blog binary
// with -ldflags. It is shown by `blog version` and the TUI about window.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo trims the linker values; it does not fill in defaults.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: strings.TrimSpace(buildVersion),
		buildDate:    strings.TrimSpace(buildDate),
		buildCommit:  strings.TrimSpace(buildCommit),
	}
}

// WithDefaults replaces every empty value with [NotAvailable].
func (a AppBuildInfo) WithDefaults() AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(a.buildVersion),
		buildDate:    orNotAvailable(a.buildDate),
		buildCommit:  orNotAvailable(a.buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
