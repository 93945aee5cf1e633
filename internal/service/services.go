// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/store"
	"github.com/MKhiriev/web-quiz/internal/utils"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
	UserService    UserService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    authService,
		SessionService: NewSessionService(storages.SessionStorage, cfg.Session.Lifetime, utils.NewUUIDGenerator(), logger),
		UserService:    NewUserService(logger),
	}, nil
}
