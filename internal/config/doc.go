// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config selects the client's environment profile and loads the
// settings around it.
//
// A profile (development, production or test) is a static set of URLs and
// logging switches chosen purely by environment name, see [ProfileFor].
// Everything else is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON or YAML config file
//  3. Environment variables (a .env file is loaded first)
//  4. Command-line flags
//
// The main entry point is [GetClientConfig].
package config
