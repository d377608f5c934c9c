// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserIsDisabled     = errors.New("user is disabled")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenSigningDisabled    = errors.New("token signing key is not configured")

	ErrPasswordHashing = errors.New("password hashing failed")
)
