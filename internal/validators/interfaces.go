// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks entities against the constraints declared in
// their `validate` struct tags.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//   - ViolationList: every failed constraint of one value, reported together
//     with the JSON property path and a human readable message.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input as a whole.
	Validate(context.Context, any) error
}
