// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the blog client runtime.
//
// It wires configuration, logging, local storage, the API client and the
// services into an [App], and runs the terminal UI together with the
// background workers for a single process lifecycle.
package client
