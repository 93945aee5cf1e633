// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler to be registered with
// [chi.Mux.MethodNotAllowed]. A request whose path is routed but whose
// method is not answers 404 Not Found instead of chi's 405, so unsupported
// methods look exactly like unknown URLs.
//
// Routes are matched by comparing the pattern with the raw request path,
// so only flat routes (no subrouters, no URL parameters) are found.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
