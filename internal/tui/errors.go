// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-blog-client/internal/app"
	"github.com/MKhiriev/go-blog-client/internal/service"
)

// humanizeError turns an error into the line shown to the user. Backend
// messages are shown as they came.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if isServerUnavailable(err) {
		return app.MsgServerUnavailable
	}

	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return app.MsgLoginRequired
	case errors.Is(err, service.ErrSessionExpired):
		return app.MsgSessionExpired
	case errors.Is(err, service.ErrInvalidInput):
		return strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
	}

	return err.Error()
}

func isServerUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout")
}
