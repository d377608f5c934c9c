// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/service"
	"github.com/MKhiriev/go-staff-api/internal/utils"
)

type Handler struct {
	services *service.Services

	// authRequired guards the write routes with the auth middleware.
	authRequired bool

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewHandler creates the HTTP handler. Write routes require a bearer token
// only when cfg carries a token sign key.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth_required", cfg.TokenSignKey != "").Msg("http handler created")
	return &Handler{
		services:     services,
		authRequired: cfg.TokenSignKey != "",
		traceIDs:     utils.NewUUIDGenerator(),
		logger:       logger,
	}
}
