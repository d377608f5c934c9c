// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPayload is matched by every [DenormalizationError].
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrInvalidIRI is returned by [Resource.ParseIRI].
	ErrInvalidIRI = errors.New("invalid IRI")

	// ErrItemNotFound is returned by an [ItemResolver] for an unknown id.
	ErrItemNotFound = errors.New("item not found")
)

// DenormalizationError reports a request body that cannot be applied to a
// resource. Message is meant for the API client.
type DenormalizationError struct {
	Message string
}

func (e *DenormalizationError) Error() string {
	return e.Message
}

// Is makes the error match [ErrInvalidPayload].
func (e *DenormalizationError) Is(target error) bool {
	return target == ErrInvalidPayload
}

func denormalizationErrorf(format string, args ...any) error {
	return &DenormalizationError{Message: fmt.Sprintf(format, args...)}
}

func syntaxError() error {
	return &DenormalizationError{Message: "Syntax error"}
}

func typeError(attr, want string, given string) error {
	return denormalizationErrorf("The type of the %q attribute must be %q, %q given.", attr, want, given)
}

func nestedDocumentError(attr string) error {
	return denormalizationErrorf("Nested documents for attribute %q are not allowed. Use IRIs instead.", attr)
}

// ItemNotFoundError is the client error for a reference to a missing item.
func ItemNotFoundError(iri string) error {
	return denormalizationErrorf("Item not found for %q.", iri)
}
