// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/web-quiz/internal/service"
	"github.com/MKhiriev/web-quiz/internal/utils"
)

// errorStatusMap gives the strict-mode status for service errors. Anything
// else, storage failures included, is a 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrNoSession:                http.StatusUnauthorized,
	service.ErrUserNotFound:             http.StatusNotFound,
	service.ErrUserCreationNotSupported: http.StatusNotImplemented,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeNull answers a failed user operation with the JSON literal null.
// Existing clients expect 200 for every such case; strict mode maps err to
// a status code instead.
func (h *Handler) writeNull(w http.ResponseWriter, err error) {
	status := http.StatusOK
	if h.strictStatusCodes {
		status = statusFromError(err)
	}

	if _, err := utils.WriteJSON(w, nil, status); err != nil {
		h.logger.Err(err).Str("func", "*Handler.writeNull").Msg("error writing response")
	}
}
