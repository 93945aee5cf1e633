// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic between the HTTP layer and
// storage: password authentication, session lifecycle and the create-user
// placeholder.
package service
