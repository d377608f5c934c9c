// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/store"
	"github.com/MKhiriev/go-staff-api/internal/utils"
	"github.com/MKhiriev/go-staff-api/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the bcrypt hashes stored by the
// UserRepository and issues HMAC-SHA256 signed JWT tokens.
type authService struct {
	// userRepository is used to look up users and record their last login.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// No tokens are issued while it is empty.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now returns the login time recorded as last_login.
	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// Login authenticates a user by username and password, records the login
// time and issues a token for the user.
//
// Returns the issued token or:
//   - ErrInvalidCredentials if the username is unknown or the password does
//     not match.
//   - ErrUserIsDisabled if the account is not enabled.
//   - ErrTokenSigningDisabled if no sign key is configured.
//   - A wrapped storage error if a repository call fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if a.tokenSignKey == "" {
		return models.Token{}, ErrTokenSigningDisabled
	}

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("empty credentials provided")
		return models.Token{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("username", credentials.Username).Msg("unknown username")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !checkPassword(user.Password, credentials.Password) {
		log.Error().Int64("id", user.ID).Str("username", user.Username).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	if !user.IsEnabled() {
		log.Error().Int64("id", user.ID).Str("username", user.Username).Msg("user is disabled")
		return models.Token{}, ErrUserIsDisabled
	}

	if err = a.userRepository.UpdateLastLogin(ctx, user.ID, a.now()); err != nil {
		log.Err(err).Int64("id", user.ID).Msg("recording last login failed")
		return models.Token{}, fmt.Errorf("recording last login failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
