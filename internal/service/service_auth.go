// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/store"
	"github.com/MKhiriev/web-quiz/internal/utils"
	"github.com/MKhiriev/web-quiz/models"
)

// authService is the concrete implementation of AuthService.
// It verifies argon2id password hashes stored by the UserRepository.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// dummyHash is verified when the username is unknown so that both
	// failure paths cost the same.
	dummyHash string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := utils.HashPassword("", utils.DefaultArgon2Params)
	if err != nil {
		return nil, fmt.Errorf("error preparing auth service: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Authenticate verifies username and password.
//
// Returns the authenticated user or:
//   - ErrInvalidCredentials if username is empty or unknown.
//   - ErrInvalidCredentials wrapping ErrWrongPassword if the password does
//     not match.
//   - A wrapped storage error if a repository call fails.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		log.Debug().Msg("empty username provided")
		return models.User{}, ErrInvalidCredentials
	}

	credentials, err := a.userRepository.FindCredentialsByUsername(ctx, username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_, _ = utils.VerifyPassword(password, a.dummyHash)
		log.Debug().Str("username", username).Msg("unknown username")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.VerifyPassword(password, credentials.PasswordHash)
	if err != nil {
		log.Err(err).Int64("user_id", credentials.UserID).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Debug().Int64("user_id", credentials.UserID).Msg("wrong password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrWrongPassword)
	}

	user, err := a.userRepository.FindUserByID(ctx, credentials.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		// removed between the two queries
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Int64("user_id", credentials.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UserInfo loads the user referenced by a session.
func (a *authService) UserInfo(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
