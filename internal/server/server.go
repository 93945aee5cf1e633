// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/handler"
	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/workers"
)

// defaultShutdownTimeout bounds graceful shutdown when no request timeout
// is configured.
const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, bgWorkers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	shutdownTimeout := cfg.RequestTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:         bgWorkers,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listener, err := s.httpServer.listen()
	if err != nil {
		return err
	}

	// workers share the signal context and stop with the server
	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Go(func() {
			s.workers.Run(ctx)
		})
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
		err = nil
	case err = <-serveErr:
		s.logger.Err(err).Msg("HTTP server stopped unexpectedly")
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if shutdownErr := s.Shutdown(shutdownCtx); shutdownErr != nil {
		s.logger.Err(shutdownErr).Msg("error during shutdown")
	}

	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return err
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
