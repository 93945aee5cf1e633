// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newCheckMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Post("/user/login", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Delete("/user/login", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.Get("/user/current", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	router.MethodNotAllowed(CheckHTTPMethod(router))
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered POST", http.MethodPost, "/user/login", http.StatusOK},
		{"registered DELETE", http.MethodDelete, "/user/login", http.StatusOK},
		{"registered GET", http.MethodGet, "/user/current", http.StatusOK},
		{"GET on login", http.MethodGet, "/user/login", http.StatusNotFound},
		{"PUT on login", http.MethodPut, "/user/login", http.StatusNotFound},
		{"POST on current", http.MethodPost, "/user/current", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/user", http.StatusNotFound},
	}

	router := newCheckMethodRouter()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_DirectCall(t *testing.T) {
	router := newCheckMethodRouter()
	check := CheckHTTPMethod(router)

	t.Run("registered method is forwarded", func(t *testing.T) {
		rr := httptest.NewRecorder()
		check(rr, httptest.NewRequest(http.MethodDelete, "/user/login", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unregistered method is hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		check(rr, httptest.NewRequest(http.MethodPatch, "/user/login", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}
