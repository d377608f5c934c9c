// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/models"
)

// EmployeeService exposes the employee resource and its job subresource.
type EmployeeService interface {
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) (models.Page[*models.Employee], error)
	GetEmployee(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, payload serializer.Payload) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id int64, payload serializer.Payload) (*models.Employee, error)

	// GetEmployeeJob returns the job of the employee with id.
	GetEmployeeJob(ctx context.Context, id int64) (*models.EmployeeJob, error)
}

// EmployeeJobService exposes the employee job resource.
type EmployeeJobService interface {
	ListEmployeeJobs(ctx context.Context, pagination models.Pagination) (models.Page[*models.EmployeeJob], error)
	GetEmployeeJob(ctx context.Context, id int64) (*models.EmployeeJob, error)
	CreateEmployeeJob(ctx context.Context, payload serializer.Payload) (*models.EmployeeJob, error)
}

// UserService exposes the user resource. Users are returned with their
// employees loaded.
type UserService interface {
	ListUsers(ctx context.Context, filter models.UserFilter) (models.Page[*models.User], error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, payload serializer.Payload) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, payload serializer.Payload) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppVersion
}
