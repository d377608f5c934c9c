// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the staff API.
//
// [StaffAPI] wraps the REST endpoints behind Go methods. Documents come back
// as generic JSON-LD maps, and non-2xx responses are mapped by mapHTTPError
// onto the sentinel errors of errors.go so callers can use [errors.Is]
// (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-staff-api/models"
)

// StaffAPI defines communication with the staff API server.
type StaffAPI interface {
	// SetToken stores the bearer token attached to subsequent write
	// requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	// Version returns the build information of the server.
	Version(ctx context.Context) (models.AppVersion, error)

	// ListEmployees fetches one page of employees. query carries page, job
	// and order[...] parameters as understood by the server.
	ListEmployees(ctx context.Context, query url.Values) (Collection, error)
	GetEmployee(ctx context.Context, id int64) (Document, error)
	GetEmployeeJob(ctx context.Context, employeeID int64) (Document, error)
	CreateEmployee(ctx context.Context, attributes Document) (Document, error)
	UpdateEmployee(ctx context.Context, id int64, attributes Document) (Document, error)

	ListEmployeeJobs(ctx context.Context, query url.Values) (Collection, error)
	CreateEmployeeJob(ctx context.Context, attributes Document) (Document, error)

	ListUsers(ctx context.Context, query url.Values) (Collection, error)
	CreateUser(ctx context.Context, attributes Document) (Document, error)
	// PatchUser sends attributes as a JSON merge patch.
	PatchUser(ctx context.Context, id int64, attributes Document) (Document, error)
	DeleteUser(ctx context.Context, id int64) error
}
