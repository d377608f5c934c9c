// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-staff-api/internal/validators"
)

// bcrypt only looks at the first 72 bytes of a password.
const passwordTooLongMessage = "This value is too long. It should have 72 characters or less."

// hashPassword returns the bcrypt hash of password. A password bcrypt
// cannot hash is reported as a violation on the "password" attribute.
func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", validators.NewViolation("password", passwordTooLongMessage)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	return string(hash), nil
}

// checkPassword reports whether password matches hash.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
