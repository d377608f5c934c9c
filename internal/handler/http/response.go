// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/internal/utils"
	"github.com/MKhiriev/go-staff-api/internal/validators"
)

const (
	contentTypeJSONLD     = "application/ld+json; charset=utf-8"
	contentTypeMergePatch = "application/merge-patch+json"
)

// writeDocument renders doc as a JSON-LD response.
func writeDocument(w http.ResponseWriter, r *http.Request, doc serializer.Document, status int) {
	if _, err := utils.WriteJSONContent(w, doc, contentTypeJSONLD, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "writeDocument").Msg("error writing response")
	}
}

// writeError renders err as a hydra:Error, or as a ConstraintViolationList
// for validation failures.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, target := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	var violations validators.ViolationList
	if errors.As(err, &violations) {
		writeDocument(w, r, violationDocument(violations), status)
		return
	}

	writeDocument(w, r, errorDocument(errorDescription(err, status, target)), status)
}

func errorDescription(err error, status int, target error) string {
	if status >= http.StatusInternalServerError || target == nil {
		return http.StatusText(status)
	}

	var denormalizationErr *serializer.DenormalizationError
	if errors.As(err, &denormalizationErr) {
		return denormalizationErr.Message
	}

	if status == http.StatusNotFound {
		return "Not Found"
	}

	return target.Error()
}

func errorDocument(description string) serializer.Document {
	return serializer.Document{
		"@context":          "/api/contexts/Error",
		"@type":             "hydra:Error",
		"hydra:title":       "An error occurred",
		"hydra:description": description,
	}
}

func violationDocument(violations validators.ViolationList) serializer.Document {
	return serializer.Document{
		"@context":          "/api/contexts/ConstraintViolationList",
		"@type":             "ConstraintViolationList",
		"hydra:title":       "An error occurred",
		"hydra:description": violations.Error(),
		"violations":        violations,
	}
}
