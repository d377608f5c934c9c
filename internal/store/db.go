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
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/migrations"
)

// retryDelays are the pauses between attempts of a retried read.
var retryDelays = []time.Duration{100 * time.Millisecond, 500 * time.Millisecond}

// DB wraps a database/sql pool together with its driver name, which selects
// the placeholder format and the migrations to apply.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database configured in cfg.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema for the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// builder returns a squirrel statement builder with the driver's
// placeholder format.
func (db *DB) builder() sq.StatementBuilderType {
	if db.driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// withRetry runs op again after a short pause while it fails with an error
// classified as [Retryable]. Only idempotent reads go through it.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	err := op()
	for _, delay := range retryDelays {
		if err == nil || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(delay):
		}

		err = op()
	}
	return err
}

// constraintError maps a unique or foreign key violation reported by either
// driver to a store sentinel. Other errors map to nil.
func constraintError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrUsernameAlreadyExists
	case pgerrcode.ForeignKeyViolation:
		return ErrRelationConstraint
	}

	switch sqliteError(err) {
	case sqlite3.ErrConstraintUnique:
		return ErrUsernameAlreadyExists
	case sqlite3.ErrConstraintForeignKey:
		return ErrRelationConstraint
	}

	return nil
}
