// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/internal/utils"
)

// maxBodyBytes bounds every request body after decompression.
const maxBodyBytes = 1 << 20

func readPayload(w http.ResponseWriter, r *http.Request) (serializer.Payload, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, bodyError(err)
	}

	return serializer.ParsePayload(body)
}

// bodyError maps a failed body read to the matching request error.
func bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: %w", ErrPayloadTooLarge, err)
	}
	return fmt.Errorf("%w: %w", ErrReadingBody, err)
}

// requireMergePatch rejects requests whose body is not
// application/merge-patch+json.
func requireMergePatch(r *http.Request) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != contentTypeMergePatch {
		return ErrUnsupportedMediaType
	}
	return nil
}

// logWrite records a successful write together with the authenticated
// user, when there is one.
func logWrite(r *http.Request, iri string) {
	event := logger.FromRequest(r).Info().Str("method", r.Method).Str("iri", iri)
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		event = event.Int64("user_id", userID)
	}
	event.Msg("resource written")
}
