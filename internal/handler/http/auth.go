// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/internal/utils"
	"github.com/MKhiriev/go-staff-api/models"
)

// tokenResponse is the body of a successful login.
type tokenResponse struct {
	Token string `json:"token"`
}

// login exchanges username and password for a signed JWT. The token is
// returned in the body and in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&credentials); err != nil {
		log.Err(err).Str("func", "Handler.login").Msg("invalid credentials JSON")
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, bodyError(err))
			return
		}
		writeError(w, r, &serializer.DenormalizationError{Message: "Syntax error"})
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.String())
	if _, err = utils.WriteJSON(w, tokenResponse{Token: token.String()}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "Handler.login").Msg("error writing token")
	}
}
