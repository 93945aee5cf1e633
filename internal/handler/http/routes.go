// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(h.withCORS())
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	// user & session routes
	router.Group(func(r chi.Router) {
		r.Post("/user/login", h.login)
		r.Delete("/user/login", h.logout)
		r.Get("/user/current", h.currentUser)
		r.Post("/user/current", h.createUser)
	})

	// test pages; absent unless debugging
	if h.debug {
		router.Group(func(r chi.Router) {
			r.Get("/_login-form", h.loginForm)
			r.Post("/_login", h.debugLogin)
		})
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
