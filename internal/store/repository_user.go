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

// userRepository is the database/sql implementation of [UserRepository].
// It handles user accounts stored in the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// ListUsers returns one page of users matching filter, ordered by id.
func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]*models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var users []*models.User
	err = r.withRetry(ctx, func() error {
		rows, err := r.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		users = make([]*models.User, 0)
		for rows.Next() {
			user, scanErr := scanUser(rows)
			if scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			users = append(users, user)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "userRepository.ListUsers").Msg("failed to query users")
		return nil, err
	}

	return users, nil
}

// CountUsers returns the number of users matching filter.
func (r *userRepository) CountUsers(ctx context.Context, filter models.UserFilter) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsersQuery(r.builder(), filter)
	if err != nil {
		log.Err(err).Str("func", "userRepository.CountUsers").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.withRetry(ctx, func() error {
		return r.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	})
	if err != nil {
		log.Err(err).Str("func", "userRepository.CountUsers").Msg("failed to count users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// FindUser returns the user with id or [ErrUserNotFound].
func (r *userRepository) FindUser(ctx context.Context, id int64) (*models.User, error) {
	return r.findUser(ctx, "userRepository.FindUser", sq.Eq{"id": id})
}

// FindUserByUsername returns the user whose username matches exactly or
// [ErrUserNotFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findUser(ctx, "userRepository.FindUserByUsername", sq.Eq{"username": username})
}

func (r *userRepository) findUser(ctx context.Context, fn string, where sq.Eq) (*models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().Select(userColumns...).From("users").Where(where).ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user *models.User
	err = r.withRetry(ctx, func() error {
		var scanErr error
		user, scanErr = scanUser(r.DB.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to find user")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// CreateUser persists a new user record and returns its id.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Str("username", user.Username).Msg("failed to insert user")
		if constraintErr := constraintError(err); constraintErr != nil {
			return 0, constraintErr
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "userRepository.CreateUser").Int64("user_id", id).Msg("user created")
	return id, nil
}

// UpdateUser writes every column of user.
func (r *userRepository) UpdateUser(ctx context.Context, user *models.User) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(r.builder(), user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", user.ID).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateUser").Int64("user_id", user.ID).Msg("failed to update user")
		if constraintErr := constraintError(err); constraintErr != nil {
			return constraintErr
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrUserNotFound)
}

// UpdateLastLogin stores at as the user's last login.
func (r *userRepository) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().Update("users").Set("last_login", at.UTC()).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateLastLogin").Int64("user_id", id).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateLastLogin").Int64("user_id", id).Msg("failed to update last login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrUserNotFound)
}

// DeleteUser removes the user. A user that still owns employees cannot be
// removed: the foreign key violation is reported as [ErrRelationConstraint].
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder().Delete("users").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		log.Err(err).Str("func", "userRepository.DeleteUser").Int64("user_id", id).Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.DeleteUser").Int64("user_id", id).Msg("failed to delete user")
		if constraintErr := constraintError(err); constraintErr != nil {
			return constraintErr
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrUserNotFound)
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		user       models.User
		enabled    bool
		registered time.Time
		salt       sql.NullString
		roles      sql.NullString
		lastLogin  sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.UsernameCanonical,
		&user.Email,
		&enabled,
		&user.Password,
		&user.ConfirmationToken,
		&registered,
		&salt,
		&roles,
		&lastLogin,
	)
	if err != nil {
		return nil, err
	}

	user.Enabled = &enabled
	user.RegistrationDate = *newDateTime(registered)
	if salt.Valid {
		user.Salt = &salt.String
	}
	user.LastLogin = fromNullTime(lastLogin)
	user.Employees = make([]*models.Employee, 0)

	if user.Roles, err = decodeRoles(roles); err != nil {
		return nil, err
	}

	return &user, nil
}
