// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/logger"
)

// writeTimeoutMargin leaves room for the 504 written by the router's
// timeout middleware.
const writeTimeoutMargin = 5 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout + writeTimeoutMargin,
			IdleTimeout:       2 * cfg.RequestTimeout,
		},
		logger: logger,
	}
}

// listen binds the configured address so that bind errors surface before
// serving starts.
func (h *httpServer) listen() (net.Listener, error) {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", h.server.Addr, err)
	}
	return listener, nil
}

func (h *httpServer) serve(listener net.Listener) error {
	h.logger.Info().Str("address", listener.Addr().String()).Msg("HTTP server listening")

	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
