// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-staff-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EmployeeRepository persists employees. Every employee is loaded with its
// job and with its owner's id and username.
type EmployeeRepository interface {
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error)
	CountEmployees(ctx context.Context, filter models.EmployeeFilter) (int, error)
	ListEmployeesByOwner(ctx context.Context, ownerID int64) ([]*models.Employee, error)
	FindEmployee(ctx context.Context, id int64) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) (int64, error)
	UpdateEmployee(ctx context.Context, employee *models.Employee) error
}

// EmployeeJobRepository persists employee jobs.
type EmployeeJobRepository interface {
	ListEmployeeJobs(ctx context.Context, pagination models.Pagination) ([]*models.EmployeeJob, error)
	CountEmployeeJobs(ctx context.Context) (int, error)
	FindEmployeeJob(ctx context.Context, id int64) (*models.EmployeeJob, error)
	CreateEmployeeJob(ctx context.Context, job *models.EmployeeJob) (int64, error)
}

// UserRepository persists users. Employees of a user are not loaded.
type UserRepository interface {
	ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error)
	CountUsers(ctx context.Context, filter models.UserFilter) (int, error)
	FindUser(ctx context.Context, id int64) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	DeleteUser(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
