// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_Row(t *testing.T) {
	created := time.Date(2022, 5, 1, 10, 0, 0, 0, time.UTC)
	u := User{
		UserID:    1,
		Username:  "alb",
		FirstName: "Alberto",
		LastName:  "Caeiro",
		Email:     "alb@example.com",
		CreatedAt: created,
	}

	assert.Equal(t, map[string]any{
		"user_id":    int64(1),
		"username":   "alb",
		"first_name": "Alberto",
		"last_name":  "Caeiro",
		"email":      "alb@example.com",
		"created_at": created,
	}, u.Row())
	assert.Equal(t, "users", u.TableName())
}
