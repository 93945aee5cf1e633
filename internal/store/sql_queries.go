// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/web-quiz/models"
)

var usersTable = models.User{}.TableName()

var (
	credentialsColumns = []string{"user_id", "username", "password_hash"}
	userColumns        = []string{"user_id", "username", "first_name", "last_name", "email", "created_at"}
)

func buildFindCredentialsByUsername(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.
		Select(credentialsColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByID(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
