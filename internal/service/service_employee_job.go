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

type employeeJobService struct {
	employeeJobRepository store.EmployeeJobRepository

	denormalizer *serializer.Denormalizer
	validator    validators.Validator

	itemsPerPage int

	logger *logger.Logger
}

func NewEmployeeJobService(jobs store.EmployeeJobRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) EmployeeJobService {
	return &employeeJobService{
		employeeJobRepository: jobs,
		// jobs carry no relations
		denormalizer: serializer.NewDenormalizer(nil),
		validator:    validator,
		itemsPerPage: cfg.ItemsPerPage,
		logger:       logger,
	}
}

func (s *employeeJobService) ListEmployeeJobs(ctx context.Context, pagination models.Pagination) (models.Page[*models.EmployeeJob], error) {
	log := logger.FromContext(ctx)

	pagination = pageOf(pagination.Page, s.itemsPerPage)

	jobs, err := s.employeeJobRepository.ListEmployeeJobs(ctx, pagination)
	if err != nil {
		log.Err(err).Str("func", "employeeJobService.ListEmployeeJobs").Msg("listing employee jobs failed")
		return models.Page[*models.EmployeeJob]{}, fmt.Errorf("listing employee jobs failed: %w", err)
	}

	total, err := s.employeeJobRepository.CountEmployeeJobs(ctx)
	if err != nil {
		log.Err(err).Str("func", "employeeJobService.ListEmployeeJobs").Msg("counting employee jobs failed")
		return models.Page[*models.EmployeeJob]{}, fmt.Errorf("counting employee jobs failed: %w", err)
	}

	return models.Page[*models.EmployeeJob]{
		Items:      jobs,
		TotalItems: total,
		Pagination: pagination,
	}, nil
}

func (s *employeeJobService) GetEmployeeJob(ctx context.Context, id int64) (*models.EmployeeJob, error) {
	return s.employeeJobRepository.FindEmployeeJob(ctx, id)
}

func (s *employeeJobService) CreateEmployeeJob(ctx context.Context, payload serializer.Payload) (*models.EmployeeJob, error) {
	log := logger.FromContext(ctx)

	job := &models.EmployeeJob{}
	if err := s.denormalizer.EmployeeJob(ctx, payload, job); err != nil {
		log.Err(err).Str("func", "employeeJobService.CreateEmployeeJob").Msg("payload rejected")
		return nil, err
	}

	if err := s.validator.Validate(ctx, job); err != nil {
		log.Err(err).Str("func", "employeeJobService.CreateEmployeeJob").Msg("employee job is invalid")
		return nil, err
	}

	id, err := s.employeeJobRepository.CreateEmployeeJob(ctx, job)
	if err != nil {
		log.Err(err).Str("func", "employeeJobService.CreateEmployeeJob").Msg("employee job creation ended with error")
		return nil, fmt.Errorf("employee job creation ended with error: %w", err)
	}

	job.ID = id
	return job, nil
}
