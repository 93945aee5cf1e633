// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loggedRequest runs handler behind withLogging with a buffer-backed
// request logger and returns the decoded access log entry.
func loggedRequest(t *testing.T, req *http.Request, handler http.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))
	rr := httptest.NewRecorder()

	newTestHandler().withLogging(handler).ServeHTTP(rr, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return rr, entry
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		origin     string
		handler    http.HandlerFunc
		wantStatus float64
		wantSize   float64
	}{
		{
			name:   "profile response",
			method: http.MethodGet,
			target: "/user/current",
			origin: "http://localhost:8080",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"userId":1}`))
			},
			wantStatus: 200,
			wantSize:   12,
		},
		{
			name:   "empty logout",
			method: http.MethodDelete,
			target: "/user/login",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantStatus: 200,
			wantSize:   0,
		},
		{
			name:       "nothing written",
			method:     http.MethodGet,
			target:     "/user/current?x=1",
			handler:    func(w http.ResponseWriter, r *http.Request) {},
			wantStatus: 200,
			wantSize:   0,
		},
		{
			name:   "bad request",
			method: http.MethodPost,
			target: "/user/login",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			},
			wantStatus: 400,
			wantSize:   float64(len("Invalid JSON was passed\n")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}

			_, entry := loggedRequest(t, req, tt.handler)

			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, tt.origin, entry["origin"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
			assert.Equal(t, "info", entry["level"])
		})
	}
}

func TestWithLogging_PassesResponseThrough(t *testing.T) {
	rr, _ := loggedRequest(t, httptest.NewRequest(http.MethodGet, "/", nil), func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Custom", "1")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("null"))
	})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("X-Custom"))
	assert.Equal(t, "null", rr.Body.String())
}
