// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrInvalidDateTime is returned when a datetime attribute matches none
	// of the accepted layouts.
	ErrInvalidDateTime = errors.New("invalid datetime")
)
