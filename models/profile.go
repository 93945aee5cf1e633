// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Profile is a user as sent to clients: a flat object keyed in the
// client naming convention (camelCase).
type Profile map[string]any
