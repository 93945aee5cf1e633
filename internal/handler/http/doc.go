// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the web-quiz API server:
// the chi router, middleware (tracing, access log, gzip, CORS, sessions) and
// the user/session route handlers. Debug-only HTML routes are registered
// only when the debug flag is on.
package http
