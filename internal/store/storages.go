// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
)

// Storages groups all repositories into a single value that can be passed
// to the service layer.
type Storages struct {
	EmployeeRepository    EmployeeRepository
	EmployeeJobRepository EmployeeJobRepository
	UserRepository        UserRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens the database configured in cfg.DB.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires every repository to the connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.DB.Driver).Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the repositories to an open connection.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		EmployeeRepository:    NewEmployeeRepository(db, logger),
		EmployeeJobRepository: NewEmployeeJobRepository(db, logger),
		UserRepository:        NewUserRepository(db, logger),
		db:                    db,
	}
}

// Close closes the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
