// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.withRetry] whether a failed read is worth
// another attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// transientPgCodes are the PostgreSQL codes after which repeating the same
// read can succeed.
var transientPgCodes = map[string]struct{}{
	pgerrcode.ConnectionException:     {},
	pgerrcode.ConnectionDoesNotExist:  {},
	pgerrcode.ConnectionFailure:       {},
	pgerrcode.TransactionRollback:     {},
	pgerrcode.SerializationFailure:    {},
	pgerrcode.DeadlockDetected:        {},
	pgerrcode.CannotConnectNow:        {},
	pgerrcode.AdminShutdown:           {},
	pgerrcode.TooManyConnections:      {},
	pgerrcode.LockNotAvailable:        {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] for the codes in transientPgCodes. Constraint
// violations, data and syntax errors and non-driver errors are final.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}

	if _, ok := transientPgCodes[pgErr.Code]; ok {
		return Retryable
	}
	return NonRetryable
}
