// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/web-quiz/internal/app"
	"github.com/MKhiriev/web-quiz/internal/casing"
	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/service"
	"github.com/MKhiriev/web-quiz/internal/utils"
	"github.com/MKhiriev/web-quiz/models"
)

// login handles POST /user/login.
//
// On success the previous session is dropped, a permanent one holding the
// user ID is started and the profile is returned. On failure the body is
// null and any existing session is left as it was.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.login").Msg("invalid JSON body")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("func", "*Handler.login").Send()
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, *request.Username, *request.Password)
	if err != nil {
		log.Info().Err(err).Str("username", *request.Username).Msg("login failed")
		h.writeNull(w, err)
		return
	}

	var previousID string
	if previous, ok := utils.GetSessionFromContext(ctx); ok {
		previousID = previous.ID
	}

	session, err := h.services.SessionService.Start(ctx, user.UserID, previousID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("error starting session")
		h.writeNull(w, err)
		return
	}

	if err = h.setSessionCookie(w, session); err != nil {
		log.Err(err).Str("func", "*Handler.login").Send()
		h.writeNull(w, err)
		return
	}

	log.Info().Int64("user_id", user.UserID).Msg("user logged in")
	h.writeProfile(w, r, user)
}

// logout handles DELETE /user/login. It always succeeds with an empty body.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if session, ok := utils.GetSessionFromContext(ctx); ok {
		if err := h.services.SessionService.Clear(ctx, session.ID); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.logout").Msg("error clearing session")
		}
	}

	h.expireSessionCookie(w)
	w.WriteHeader(http.StatusOK)
}

// currentUser handles GET /user/current.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session, ok := utils.GetSessionFromContext(ctx)
	if !ok {
		h.writeNull(w, service.ErrNoSession)
		return
	}

	user, err := h.services.AuthService.UserInfo(ctx, session.UserID)
	if err != nil {
		log := logger.FromRequest(r)
		if errors.Is(err, service.ErrUserNotFound) {
			log.Warn().Int64("user_id", session.UserID).Msg("session refers to a missing user")
		} else {
			log.Err(err).Str("func", "*Handler.currentUser").Msg("error loading user")
		}
		h.writeNull(w, err)
		return
	}

	h.writeProfile(w, r, user)
}

// createUser handles POST /user/current. Accounts are not created through
// the API; the payload, any JSON value, is only logged.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var payload any
	if err := utils.DecodeJSON(r, &payload); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.createUser").Msg("invalid JSON body")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	err := h.services.UserService.CreateUser(r.Context(), payload)
	h.writeNull(w, err)
}

func (h *Handler) writeProfile(w http.ResponseWriter, r *http.Request, user models.User) {
	profile := models.Profile(casing.Keys(user.Row(), h.profileKeys))

	if _, err := utils.WriteJSON(w, profile, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeProfile").Msg("error writing profile")
	}
}
