// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer: the SQL user repository
// (PostgreSQL through pgx, or SQLite) and the session storages (Redis or
// in-memory).
package store
