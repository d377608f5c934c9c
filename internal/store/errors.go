// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an insert or update violates
	// the unique username constraint (username_uniq).
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrRelationConstraint is returned when a write or delete violates a
	// foreign key, e.g. deleting a user that still owns employees.
	ErrRelationConstraint = errors.New("relation constraint violated")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrEmployeeNotFound is returned when no employee matches the lookup.
	ErrEmployeeNotFound = errors.New("no employee was found")

	// ErrEmployeeJobNotFound is returned when no employee job matches the
	// lookup.
	ErrEmployeeJobNotFound = errors.New("no employee job was found")

	// ErrUnsupportedDriver is returned when the configured driver is
	// neither pgx nor sqlite3.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
