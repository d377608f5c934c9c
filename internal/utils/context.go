// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// typed context keys, JSON response writing, the resty HTTP client, JWT
// issuing and parsing, and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys cannot collide
// with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user id (int64) in a request
// context.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user id and whether one is
// present with the expected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
