// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/models"
)

type employeeJobRepository struct {
	*DB
	logger *logger.Logger
}

// NewEmployeeJobRepository constructs an [EmployeeJobRepository] backed by db.
func NewEmployeeJobRepository(db *DB, logger *logger.Logger) EmployeeJobRepository {
	logger.Debug().Msg("creating employee job repository")
	return &employeeJobRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *employeeJobRepository) ListEmployeeJobs(ctx context.Context, pagination models.Pagination) ([]*models.EmployeeJob, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeeJobsQuery(r.builder(), pagination)
	if err != nil {
		log.Err(err).Str("func", "employeeJobRepository.ListEmployeeJobs").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var jobs []*models.EmployeeJob
	err = r.withRetry(ctx, func() error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		jobs = make([]*models.EmployeeJob, 0)
		for rows.Next() {
			var job models.EmployeeJob
			if scanErr := rows.Scan(&job.ID, &job.Title); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			jobs = append(jobs, &job)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "employeeJobRepository.ListEmployeeJobs").Msg("failed to query employee jobs")
		return nil, err
	}

	return jobs, nil
}

func (r *employeeJobRepository) CountEmployeeJobs(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().Select("COUNT(*)").From("employee_job").ToSql()
	if err != nil {
		log.Err(err).Str("func", "employeeJobRepository.CountEmployeeJobs").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "employeeJobRepository.CountEmployeeJobs").Msg("failed to count employee jobs")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (r *employeeJobRepository) FindEmployeeJob(ctx context.Context, id int64) (*models.EmployeeJob, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().Select(employeeJobColumns...).From("employee_job").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "employeeJobRepository.FindEmployeeJob").Int64("job_id", id).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var job models.EmployeeJob
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&job.ID, &job.Title)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeJobNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "employeeJobRepository.FindEmployeeJob").Int64("job_id", id).Msg("failed to find employee job")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &job, nil
}

func (r *employeeJobRepository) CreateEmployeeJob(ctx context.Context, job *models.EmployeeJob) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEmployeeJobQuery(r.builder(), job)
	if err != nil {
		log.Err(err).Str("func", "employeeJobRepository.CreateEmployeeJob").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "employeeJobRepository.CreateEmployeeJob").Msg("failed to insert employee job")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}
