// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a quiz account as stored in the "users" table.
//
// The db tags carry the column names; they are also the source naming
// convention from which client-facing profile keys are derived
// (see [Profile]).
type User struct {
	// UserID is the server-assigned identifier. It is the only value kept
	// in a session.
	UserID int64 `db:"user_id"`

	// Username is the unique login name.
	Username string `db:"username"`

	// FirstName is the given name shown in the UI.
	FirstName string `db:"first_name"`

	// LastName is the family name shown in the UI.
	LastName string `db:"last_name"`

	// Email is the contact address.
	Email string `db:"email"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `db:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Row returns the user keyed by column name, the shape the storage layer
// hands to the API boundary.
func (u User) Row() map[string]any {
	return map[string]any{
		"user_id":    u.UserID,
		"username":   u.Username,
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	}
}

// Credentials is the subset of a user row needed to verify a login.
// It never leaves the service layer.
type Credentials struct {
	UserID   int64
	Username string

	// PasswordHash is an argon2id hash in PHC string format.
	PasswordHash string
}

// LoginRequest is the JSON body of POST /user/login.
// Pointers distinguish a missing key from an empty value.
type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}
