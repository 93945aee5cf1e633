// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{"map", map[string]string{"key": "value"}, http.StatusOK, `{"key":"value"}`},
		{"nil writes null", nil, http.StatusOK, `null`},
		{"custom status", nil, http.StatusUnauthorized, `null`},
		{"nested", map[string]any{"user": map[string]any{"firstName": "Alberto"}}, http.StatusOK, `{"user":{"firstName":"Alberto"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.statusCode)
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Username *string `json:"username"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
		want    *string
	}{
		{name: "valid", body: `{"username":"alb"}`, want: ptr("alb")},
		{name: "missing key", body: `{}`, want: nil},
		{name: "unknown keys ignored", body: `{"username":"alb","extra":1}`, want: ptr("alb")},
		{name: "empty body", body: ``, wantErr: true},
		{name: "not json", body: `username=alb`, wantErr: true},
		{name: "truncated", body: `{"username":`, wantErr: true},
		{name: "trailing value", body: `{"username":"a"}{"username":"b"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var got payload
			err := DecodeJSON(r, &got)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedJSON)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Username)
		})
	}
}

func ptr(s string) *string { return &s }
