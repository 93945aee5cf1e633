// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/service"
	"github.com/MKhiriev/web-quiz/internal/utils"
)

// withSession resolves the session cookie and, for a live session, puts
// it into the request context. A live session gets its lifetime restarted
// and its cookie re-issued. Requests without a valid session continue
// anonymously.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := h.readSessionCookie(r)
		if err != nil {
			if !errors.Is(err, http.ErrNoCookie) {
				logger.FromRequest(r).Debug().Err(err).Msg("ignoring session cookie")
			}
			next.ServeHTTP(w, r)
			return
		}

		session, err := h.services.SessionService.Get(r.Context(), sessionID)
		switch {
		case errors.Is(err, service.ErrNoSession):
			next.ServeHTTP(w, r)
			return
		case err != nil:
			logger.FromRequest(r).Err(err).Msg("error loading session, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		refreshed, err := h.services.SessionService.Refresh(r.Context(), session)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("error refreshing session, keeping current expiry")
		} else {
			session = refreshed
			if err := h.setSessionCookie(w, session); err != nil {
				logger.FromRequest(r).Err(err).Msg("error re-issuing session cookie")
			}
		}

		next.ServeHTTP(w, r.WithContext(utils.WithSession(r.Context(), session)))
	})
}
