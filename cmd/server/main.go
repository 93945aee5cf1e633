// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/handler"
	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/server"
	"github.com/MKhiriev/web-quiz/internal/service"
	"github.com/MKhiriev/web-quiz/internal/store"
	"github.com/MKhiriev/web-quiz/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("web-quiz-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	level, err := cfg.ZerologLevel()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	log = log.Leveled(level)

	log.Debug().
		Str("environment", cfg.Environment).
		Bool("debug", cfg.Debug).
		Bool("testing", cfg.Testing).
		Str("db_driver", cfg.Storage.DB.Driver).
		Str("db_host", cfg.Storage.DB.Host).
		Str("db_name", cfg.Storage.DB.Name).
		Str("session_cookie", cfg.Session.CookieName).
		Dur("session_lifetime", cfg.Session.Lifetime).
		Bool("redis_sessions", cfg.Session.RedisAddress != "").
		Str("http_address", cfg.Server.HTTPAddress).
		Msg("received configs")

	if cfg.SecretGenerated() {
		log.Warn().Msg("SECRET_KEY is not set, using a generated key: sessions will not survive a restart")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("error running server")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
