// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Every deployment runs one of two environment profiles, development or
// production, selected by the -env flag or the ENV variable. The profile is
// then overlaid by (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]; [Resolve] exposes the bare
// profiles.
package config
