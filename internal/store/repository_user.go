// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. It works with both supported drivers; the dialect lives
// in the query builder held by [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindCredentialsByUsername retrieves the ID and password hash of the user
// with the given username.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - driver-level error → wrapped [ErrExecutingQuery], additionally
//     [ErrDatabaseUnavailable] when the connection is the cause.
//   - scan failure → wrapped [ErrScanningRow].
func (r *userRepository) FindCredentialsByUsername(ctx context.Context, username string) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindCredentialsByUsername(r.db.builder, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindCredentialsByUsername").Msg("error building query")
		return models.Credentials{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindCredentialsByUsername").
			Str("pg_code", postgresError(err)).
			Msg("error executing query")
		return models.Credentials{}, r.db.queryError(err)
	}

	var credentials models.Credentials
	if err := row.Scan(&credentials.UserID, &credentials.Username, &credentials.PasswordHash); err != nil {
		if isNoRows(err) {
			return models.Credentials{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindCredentialsByUsername").Msg("error: scanning error")
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return credentials, nil
}

// FindUserByID retrieves the full user record for userID.
//
// Error handling follows [userRepository.FindCredentialsByUsername].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByID(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByID").
			Int64("user_id", userID).
			Str("pg_code", postgresError(err)).
			Msg("error executing query")
		return models.User{}, r.db.queryError(err)
	}

	var user models.User
	if err := row.Scan(&user.UserID, &user.Username, &user.FirstName, &user.LastName, &user.Email, &user.CreatedAt); err != nil {
		if isNoRows(err) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
