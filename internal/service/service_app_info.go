// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/models"
)

type appInfoService struct {
	appVersion models.AppVersion

	logger *logger.Logger
}

// NewAppInfoService reports the linked build metadata. A configured version
// takes precedence over the linked one.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	appVersion := buildInfo.AppVersion()
	if cfg.Version != "" {
		appVersion.Version = cfg.Version
	}

	return &appInfoService{
		appVersion: appVersion,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.AppVersion {
	return s.appVersion
}
