// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteJSON(w, version, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getServerVersion").Send()
	}
}
