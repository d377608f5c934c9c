// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/models"
)

// employeeRepository is the database/sql implementation of
// [EmployeeRepository] over the "employee" table.
//
// Every read joins the job and the owner, so returned employees carry a
// complete [models.EmployeeJob] and an owner with ID and Username set.
type employeeRepository struct {
	*DB
	logger *logger.Logger
}

// NewEmployeeRepository constructs an [EmployeeRepository] backed by db.
func NewEmployeeRepository(db *DB, logger *logger.Logger) EmployeeRepository {
	logger.Debug().Msg("creating employee repository")
	return &employeeRepository{
		DB:     db,
		logger: logger,
	}
}

// ListEmployees returns one page of employees matching filter, ordered by
// filter.Order with id ASC as the final tie-breaker.
func (r *employeeRepository) ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeesQuery(r.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.ListEmployees").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEmployees(ctx, "employeeRepository.ListEmployees", query, args)
}

// CountEmployees returns the number of employees matching filter, ignoring
// its pagination and order.
func (r *employeeRepository) CountEmployees(ctx context.Context, filter models.EmployeeFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountEmployeesQuery(r.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.CountEmployees").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.CountEmployees").Msg("failed to count employees")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ListEmployeesByOwner returns every employee owned by the user, ordered
// by id.
func (r *employeeRepository) ListEmployeesByOwner(ctx context.Context, ownerID int64) ([]*models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeesWhereQuery(r.builder(), sq.Eq{"e.owner_id": ownerID})
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.ListEmployeesByOwner").Int64("owner_id", ownerID).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryEmployees(ctx, "employeeRepository.ListEmployeesByOwner", query, args)
}

// FindEmployee returns the employee with id or [ErrEmployeeNotFound].
func (r *employeeRepository) FindEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEmployeesWhereQuery(r.builder(), sq.Eq{"e.id": id})
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.FindEmployee").Int64("employee_id", id).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var employee *models.Employee
	err = r.withRetry(ctx, func() error {
		var scanErr error
		employee, scanErr = scanEmployee(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.FindEmployee").Int64("employee_id", id).Msg("failed to find employee")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return employee, nil
}

// CreateEmployee inserts employee and returns the new id.
func (r *employeeRepository) CreateEmployee(ctx context.Context, employee *models.Employee) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEmployeeQuery(r.builder(), employee)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.CreateEmployee").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "employeeRepository.CreateEmployee").Msg("failed to insert employee")
		if constraintErr := constraintError(err); constraintErr != nil {
			return 0, constraintErr
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "employeeRepository.CreateEmployee").Int64("employee_id", id).Msg("employee created")
	return id, nil
}

// UpdateEmployee writes every column of employee. A missing row yields
// [ErrEmployeeNotFound].
func (r *employeeRepository) UpdateEmployee(ctx context.Context, employee *models.Employee) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateEmployeeQuery(r.builder(), employee)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.UpdateEmployee").Int64("employee_id", employee.ID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "employeeRepository.UpdateEmployee").Int64("employee_id", employee.ID).Msg("failed to update employee")
		if constraintErr := constraintError(err); constraintErr != nil {
			return constraintErr
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrEmployeeNotFound)
}

func (r *employeeRepository) queryEmployees(ctx context.Context, fn, query string, args []any) ([]*models.Employee, error) {
	log := logger.FromContext(ctx)

	var employees []*models.Employee
	err := r.withRetry(ctx, func() error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		employees = make([]*models.Employee, 0)
		for rows.Next() {
			employee, scanErr := scanEmployee(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			employees = append(employees, employee)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query employees")
		return nil, err
	}

	return employees, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	var (
		employee   models.Employee
		hired      time.Time
		experience int
		firedDate  sql.NullTime
		jobID      sql.NullInt64
		jobTitle   sql.NullString
		owner      models.User
	)

	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&hired,
		&experience,
		&employee.Salary,
		&firedDate,
		&jobID,
		&jobTitle,
		&owner.ID,
		&owner.Username,
	)
	if err != nil {
		return nil, err
	}

	employee.Hired = newDateTime(hired)
	employee.Experience = &experience
	employee.FiredDate = fromNullTime(firedDate)
	if jobID.Valid {
		employee.Job = &models.EmployeeJob{ID: jobID.Int64, Title: jobTitle.String}
	}
	employee.Owner = &owner

	return &employee, nil
}

// expectAffected returns notFound when a statement touched no row.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
