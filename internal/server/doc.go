// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport and the background workers of the
// web-quiz API server until a termination signal arrives, then shuts both
// down gracefully.
package server
