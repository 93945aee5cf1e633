// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/rs/cors"
)

// withCORS allows credentialed cross-origin requests from the configured
// origins. "*" reflects whatever origin the browser sends, since a literal
// wildcard is not valid together with credentials.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowCredentials: true,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Content-Encoding", "Accept-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}

	if slices.Contains(h.allowedOrigins, "*") {
		opts.AllowOriginFunc = func(string) bool { return true }
	} else {
		opts.AllowedOrigins = h.allowedOrigins
	}

	return cors.New(opts).Handler
}
