// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLoginForm(t *testing.T) {
	h, _ := newMockedHandler(t, newTestConfig(t))

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/_login-form", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	body := rr.Body.String()
	assert.Contains(t, body, `<form method="POST" action="/_login">`)
	assert.Contains(t, body, `<input type="text" name="username">`)
	assert.Contains(t, body, `<input type="password" name="password">`)
}

func TestDebugLogin(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantBody   string
	}{
		{
			name:       "known pair",
			form:       url.Values{"username": {"alb"}, "password": {"abc"}},
			wantStatus: http.StatusOK,
			wantBody:   "<h1>Welcome back Alberto</h1>",
		},
		{
			name:       "wrong password",
			form:       url.Values{"username": {"alb"}, "password": {"nope"}},
			wantStatus: http.StatusOK,
			wantBody:   "<h1>Unknown user alb</h1>",
		},
		{
			name:       "markup is escaped",
			form:       url.Values{"username": {"<b>x</b>"}, "password": {"abc"}},
			wantStatus: http.StatusOK,
			wantBody:   "<h1>Unknown user &lt;b&gt;x&lt;/b&gt;</h1>",
		},
		{
			name:       "missing field",
			form:       url.Values{"username": {"alb"}},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newMockedHandler(t, newTestConfig(t))
			mocks.auth.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			mocks.sessions.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			req := httptest.NewRequest(http.MethodPost, "/_login", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rr := serve(h, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rr.Body.String())
			}
			assert.Empty(t, rr.Result().Cookies())
		})
	}
}
