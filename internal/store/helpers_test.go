// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
)

// newTestDB returns a postgres-flavoured DB over sqlmock.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})

	return &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func sqliteConstraintError(code sqlite3.ErrNoExtended) error {
	return sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: code}
}
