// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/internal/store"
	"github.com/MKhiriev/go-staff-api/models"
)

// itemResolver loads relation targets referenced by write payloads.
type itemResolver struct {
	employeeJobRepository store.EmployeeJobRepository
	userRepository        store.UserRepository
}

func newItemResolver(jobs store.EmployeeJobRepository, users store.UserRepository) *itemResolver {
	return &itemResolver{
		employeeJobRepository: jobs,
		userRepository:        users,
	}
}

func (r *itemResolver) EmployeeJob(ctx context.Context, id int64) (*models.EmployeeJob, error) {
	job, err := r.employeeJobRepository.FindEmployeeJob(ctx, id)
	if errors.Is(err, store.ErrEmployeeJobNotFound) {
		return nil, serializer.ErrItemNotFound
	}
	return job, err
}

func (r *itemResolver) User(ctx context.Context, id int64) (*models.User, error) {
	user, err := r.userRepository.FindUser(ctx, id)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, serializer.ErrItemNotFound
	}
	return user, err
}
