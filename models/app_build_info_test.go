// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_WithDefaults(t *testing.T) {
	tests := []struct {
		name                  string
		in                    AppBuildInfo
		version, date, commit string
	}{
		{
			name:    "nothing stamped",
			in:      NewAppBuildInfo("", "  ", ""),
			version: NotAvailable, date: NotAvailable, commit: NotAvailable,
		},
		{
			name:    "partially stamped",
			in:      NewAppBuildInfo(" 1.4.0 ", "", "9f1c2ab"),
			version: "1.4.0", date: NotAvailable, commit: "9f1c2ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.WithDefaults()
			assert.Equal(t, tt.version, got.BuildVersion())
			assert.Equal(t, tt.date, got.BuildDate())
			assert.Equal(t, tt.commit, got.BuildCommit())
		})
	}
}

func TestNewAppBuildInfo_KeepsEmptyValues(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-16", "")

	assert.Empty(t, info.BuildVersion())
	assert.Equal(t, "2026-10-16", info.BuildDate())
}
