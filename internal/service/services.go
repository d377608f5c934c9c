// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/store"
	"github.com/MKhiriev/go-staff-api/internal/validators"
	"github.com/MKhiriev/go-staff-api/models"
)

type Services struct {
	EmployeeService    EmployeeService
	EmployeeJobService EmployeeJobService
	UserService        UserService
	AuthService        AuthService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	validator := validators.NewEntityValidator()

	return &Services{
		EmployeeService: NewEmployeeService(storages.EmployeeRepository, storages.EmployeeJobRepository,
			storages.UserRepository, validator, cfg, logger),
		EmployeeJobService: NewEmployeeJobService(storages.EmployeeJobRepository, validator, cfg, logger),
		UserService: NewUserService(storages.UserRepository, storages.EmployeeRepository,
			storages.EmployeeJobRepository, validator, cfg, logger),
		AuthService:    NewAuthService(storages.UserRepository, cfg, logger),
		AppInfoService: NewAppInfoService(cfg, buildInfo, logger),
	}
}
