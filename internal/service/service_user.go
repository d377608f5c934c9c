// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/internal/store"
	"github.com/MKhiriev/go-staff-api/internal/validators"
	"github.com/MKhiriev/go-staff-api/models"
)

// userService is the concrete implementation of UserService.
//
// Passwords are stored as bcrypt hashes. A password is hashed when a user is
// created and whenever a write payload carries the "password" attribute.
type userService struct {
	userRepository     store.UserRepository
	employeeRepository store.EmployeeRepository

	// denormalizer accepts the user:write group only.
	denormalizer *serializer.Denormalizer
	validator    validators.Validator

	passwordHashCost int
	itemsPerPage     int

	logger *logger.Logger
}

func NewUserService(
	users store.UserRepository,
	employees store.EmployeeRepository,
	jobs store.EmployeeJobRepository,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:     users,
		employeeRepository: employees,
		denormalizer:       serializer.NewDenormalizer(newItemResolver(jobs, users), serializer.GroupUserWrite),
		validator:          validator,
		passwordHashCost:   cfg.PasswordHashCost,
		itemsPerPage:       cfg.ItemsPerPage,
		logger:             logger,
	}
}

// ListUsers returns one page of users, each with its employees.
func (s *userService) ListUsers(ctx context.Context, filter models.UserFilter) (models.Page[*models.User], error) {
	log := logger.FromContext(ctx)

	filter.Pagination = pageOf(filter.Page, s.itemsPerPage)

	users, err := s.userRepository.ListUsers(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "userService.ListUsers").Msg("listing users failed")
		return models.Page[*models.User]{}, fmt.Errorf("listing users failed: %w", err)
	}

	total, err := s.userRepository.CountUsers(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "userService.ListUsers").Msg("counting users failed")
		return models.Page[*models.User]{}, fmt.Errorf("counting users failed: %w", err)
	}

	for _, user := range users {
		if err = s.loadEmployees(ctx, user); err != nil {
			return models.Page[*models.User]{}, err
		}
	}

	return models.Page[*models.User]{
		Items:      users,
		TotalItems: total,
		Pagination: filter.Pagination,
	}, nil
}

// GetUser returns the user with id and its employees.
func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.loadEmployees(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// CreateUser denormalizes payload into a new user with the construction
// defaults, validates it, hashes its password and persists it.
func (s *userService) CreateUser(ctx context.Context, payload serializer.Payload) (*models.User, error) {
	log := logger.FromContext(ctx)

	user := models.NewUser()
	if err := s.apply(ctx, payload, user, true); err != nil {
		return nil, err
	}

	id, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "userService.CreateUser").Str("username", user.Username).Msg("user creation ended with error")
		return nil, fmt.Errorf("user creation ended with error: %w", err)
	}

	return s.GetUser(ctx, id)
}

// UpdateUser merges payload into the stored user with id. It serves both PUT
// and PATCH.
func (s *userService) UpdateUser(ctx context.Context, id int64, payload serializer.Payload) (*models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.apply(ctx, payload, user, payload.Has("password")); err != nil {
		return nil, err
	}

	if err = s.userRepository.UpdateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "userService.UpdateUser").Int64("user_id", id).Msg("user update ended with error")
		return nil, fmt.Errorf("user update ended with error: %w", err)
	}

	return s.GetUser(ctx, id)
}

// DeleteUser removes the user with id. Users that still own employees are
// kept and [store.ErrRelationConstraint] is returned.
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.DeleteUser").Int64("user_id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}
	return nil
}

func (s *userService) apply(ctx context.Context, payload serializer.Payload, user *models.User, passwordChanged bool) error {
	log := logger.FromContext(ctx)

	if err := s.denormalizer.User(ctx, payload, user); err != nil {
		log.Err(err).Str("func", "userService.apply").Msg("payload rejected")
		return err
	}

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("func", "userService.apply").Msg("user is invalid")
		return err
	}

	if !passwordChanged {
		return nil
	}

	hash, err := hashPassword(user.Password, s.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "userService.apply").Msg("password hashing failed")
		return err
	}
	user.Password = hash

	return nil
}

func (s *userService) loadEmployees(ctx context.Context, user *models.User) error {
	employees, err := s.employeeRepository.ListEmployeesByOwner(ctx, user.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.loadEmployees").Int64("user_id", user.ID).Msg("loading employees failed")
		return fmt.Errorf("loading employees failed: %w", err)
	}

	for _, employee := range employees {
		user.AddEmployee(employee)
	}
	return nil
}
