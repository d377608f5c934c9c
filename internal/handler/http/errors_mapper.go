// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/internal/service"
	"github.com/MKhiriev/go-staff-api/internal/store"
	"github.com/MKhiriev/go-staff-api/internal/validators"
)

// errorStatusMap is ordered: the first matching sentinel decides.
var errorStatusMap = []struct {
	target error
	status int
}{
	{serializer.ErrInvalidPayload, http.StatusBadRequest},
	{validators.ErrConstraintViolation, http.StatusBadRequest},
	{ErrInvalidPage, http.StatusBadRequest},
	{ErrPageOutOfRange, http.StatusBadRequest},
	{ErrInvalidGzipBody, http.StatusBadRequest},
	{ErrPayloadTooLarge, http.StatusRequestEntityTooLarge},
	{ErrReadingBody, http.StatusBadRequest},
	{ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{ErrResourceNotFound, http.StatusNotFound},

	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrUserIsDisabled, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrTokenSigningDisabled, http.StatusNotImplemented},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrPasswordHashing, http.StatusInternalServerError},

	{store.ErrEmployeeNotFound, http.StatusNotFound},
	{store.ErrEmployeeJobNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrRelationConstraint, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError returns the response status for err and the sentinel it
// matched, or nil when nothing matched.
func statusFromError(err error) (int, error) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.target
		}
	}
	return http.StatusInternalServerError, nil
}
