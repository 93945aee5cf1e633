// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/MKhiriev/web-quiz/internal/casing"
	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/service"
	"github.com/MKhiriev/web-quiz/internal/validators"
)

type Handler struct {
	services *service.Services

	cookies      *securecookie.SecureCookie
	cookiePolicy cookiePolicy

	strictStatusCodes bool
	debug             bool
	requestTimeout    time.Duration
	allowedOrigins    []string

	// profileKeys converts storage column names to client field names.
	profileKeys casing.Converter

	templates *template.Template
	validator validators.Validator

	logger *logger.Logger
}

// cookiePolicy holds the attributes of the session cookie.
type cookiePolicy struct {
	name     string
	httpOnly bool
	secure   bool
	sameSite http.SameSite
	lifetime time.Duration
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	sameSite, err := cfg.Session.SameSite()
	if err != nil {
		return nil, err
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	cookies := securecookie.New([]byte(cfg.SecretKey), nil)
	cookies.SetSerializer(securecookie.JSONEncoder{})
	cookies.MaxAge(max(int(cfg.Session.Lifetime/time.Second), 1))

	logger.Info().Bool("debug_routes", cfg.Debug).Bool("strict_status_codes", cfg.Server.StrictStatusCodes).Msg("http handler created")

	return &Handler{
		services: services,
		cookies:  cookies,
		cookiePolicy: cookiePolicy{
			name:     cfg.Session.CookieName,
			httpOnly: cfg.Session.CookieHTTPOnly,
			secure:   cfg.Session.CookieSecure,
			sameSite: sameSite,
			lifetime: cfg.Session.Lifetime,
		},
		strictStatusCodes: cfg.Server.StrictStatusCodes,
		debug:             cfg.Debug,
		requestTimeout:    cfg.Server.RequestTimeout,
		allowedOrigins:    cfg.CORS.AllowedOrigins,
		profileKeys:       casing.SnakeToCamel,
		templates:         templates,
		validator:         validators.NewSessionValidator(),
		logger:            logger,
	}, nil
}
