// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the inbound transports of the web-quiz API server.
package handler

import (
	"fmt"

	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/handler/http"
	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
