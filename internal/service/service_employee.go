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

const salaryScale = 2

// employeeService is the concrete implementation of EmployeeService.
type employeeService struct {
	employeeRepository    store.EmployeeRepository
	employeeJobRepository store.EmployeeJobRepository

	// denormalizer accepts the employee:write group only.
	denormalizer *serializer.Denormalizer
	validator    validators.Validator

	employeesPerPage int

	logger *logger.Logger
}

// NewEmployeeService constructs an EmployeeService. Relations in write
// payloads are resolved through jobs and users.
func NewEmployeeService(
	employees store.EmployeeRepository,
	jobs store.EmployeeJobRepository,
	users store.UserRepository,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) EmployeeService {
	return &employeeService{
		employeeRepository:    employees,
		employeeJobRepository: jobs,
		denormalizer:          serializer.NewDenormalizer(newItemResolver(jobs, users), serializer.GroupEmployeeWrite),
		validator:             validator,
		employeesPerPage:      cfg.EmployeesPerPage,
		logger:                logger,
	}
}

// ListEmployees returns one page of employees. The page size is fixed by
// configuration; filter.ItemsPerPage is overwritten.
func (s *employeeService) ListEmployees(ctx context.Context, filter models.EmployeeFilter) (models.Page[*models.Employee], error) {
	log := logger.FromContext(ctx)

	filter.Pagination = pageOf(filter.Page, s.employeesPerPage)

	employees, err := s.employeeRepository.ListEmployees(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "employeeService.ListEmployees").Msg("listing employees failed")
		return models.Page[*models.Employee]{}, fmt.Errorf("listing employees failed: %w", err)
	}

	total, err := s.employeeRepository.CountEmployees(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "employeeService.ListEmployees").Msg("counting employees failed")
		return models.Page[*models.Employee]{}, fmt.Errorf("counting employees failed: %w", err)
	}

	return models.Page[*models.Employee]{
		Items:      employees,
		TotalItems: total,
		Pagination: filter.Pagination,
	}, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	return s.employeeRepository.FindEmployee(ctx, id)
}

// CreateEmployee denormalizes payload into a new employee, validates it and
// persists it. The stored employee is returned.
func (s *employeeService) CreateEmployee(ctx context.Context, payload serializer.Payload) (*models.Employee, error) {
	log := logger.FromContext(ctx)

	employee := &models.Employee{}
	if err := s.apply(ctx, payload, employee); err != nil {
		return nil, err
	}

	id, err := s.employeeRepository.CreateEmployee(ctx, employee)
	if err != nil {
		log.Err(err).Str("func", "employeeService.CreateEmployee").Msg("employee creation ended with error")
		return nil, fmt.Errorf("employee creation ended with error: %w", err)
	}

	return s.employeeRepository.FindEmployee(ctx, id)
}

// UpdateEmployee merges payload into the stored employee with id.
// Attributes absent from payload keep their stored values.
func (s *employeeService) UpdateEmployee(ctx context.Context, id int64, payload serializer.Payload) (*models.Employee, error) {
	log := logger.FromContext(ctx)

	employee, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.apply(ctx, payload, employee); err != nil {
		return nil, err
	}

	if err = s.employeeRepository.UpdateEmployee(ctx, employee); err != nil {
		log.Err(err).Str("func", "employeeService.UpdateEmployee").Int64("employee_id", id).Msg("employee update ended with error")
		return nil, fmt.Errorf("employee update ended with error: %w", err)
	}

	return s.employeeRepository.FindEmployee(ctx, id)
}

// GetEmployeeJob returns the job subresource of the employee with id.
func (s *employeeService) GetEmployeeJob(ctx context.Context, id int64) (*models.EmployeeJob, error) {
	employee, err := s.employeeRepository.FindEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if employee.Job == nil {
		return nil, store.ErrEmployeeJobNotFound
	}

	return employee.Job, nil
}

func (s *employeeService) apply(ctx context.Context, payload serializer.Payload, employee *models.Employee) error {
	log := logger.FromContext(ctx)

	if err := s.denormalizer.Employee(ctx, payload, employee); err != nil {
		log.Err(err).Str("func", "employeeService.apply").Msg("payload rejected")
		return err
	}

	if err := s.validator.Validate(ctx, employee); err != nil {
		log.Err(err).Str("func", "employeeService.apply").Msg("employee is invalid")
		return err
	}

	// stored the way decimal(7,2) returns it on every driver
	employee.Salary = validators.FormatDecimal(employee.Salary, salaryScale)

	return nil
}

// pageOf returns the pagination for page with the given size. Pages below 1
// select the first page.
func pageOf(page, size int) models.Pagination {
	if page < 1 {
		page = 1
	}
	return models.Pagination{Page: page, ItemsPerPage: size}
}
