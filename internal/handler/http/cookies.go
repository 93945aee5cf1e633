// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/web-quiz/models"
)

// readSessionCookie returns the session ID carried by the signed cookie.
func (h *Handler) readSessionCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(h.cookiePolicy.name)
	if err != nil {
		return "", err
	}

	var sessionID string
	if err := h.cookies.Decode(h.cookiePolicy.name, cookie.Value, &sessionID); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSessionCookie, err)
	}

	return sessionID, nil
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) error {
	value, err := h.cookies.Encode(h.cookiePolicy.name, session.ID)
	if err != nil {
		return fmt.Errorf("error encoding session cookie: %w", err)
	}

	cookie := h.newCookie(value)
	if session.Permanent {
		cookie.Expires = session.ExpiresAt.UTC()
		cookie.MaxAge = int(h.cookiePolicy.lifetime / time.Second)
	}

	h.replaceCookie(w, cookie)
	return nil
}

func (h *Handler) expireSessionCookie(w http.ResponseWriter) {
	cookie := h.newCookie("")
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1

	h.replaceCookie(w, cookie)
}

// replaceCookie sets cookie, dropping any Set-Cookie for the session cookie
// already queued on w. A request sends at most one session cookie.
func (h *Handler) replaceCookie(w http.ResponseWriter, cookie *http.Cookie) {
	prefix := h.cookiePolicy.name + "="
	queued := w.Header().Values("Set-Cookie")
	kept := queued[:0:0]
	for _, v := range queued {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}

	w.Header().Del("Set-Cookie")
	for _, v := range kept {
		w.Header().Add("Set-Cookie", v)
	}
	http.SetCookie(w, cookie)
}

func (h *Handler) newCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookiePolicy.name,
		Value:    value,
		Path:     "/",
		HttpOnly: h.cookiePolicy.httpOnly,
		Secure:   h.cookiePolicy.secure,
		SameSite: h.cookiePolicy.sameSite,
	}
}
