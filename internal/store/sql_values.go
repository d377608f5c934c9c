// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-staff-api/models"
)

// nullTime converts an optional datetime for storage. Datetimes are stored
// in UTC.
func nullTime(d *models.DateTime) sql.NullTime {
	if d == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: d.UTC(), Valid: true}
}

func fromNullTime(t sql.NullTime) *models.DateTime {
	if !t.Valid {
		return nil
	}
	d := models.NewDateTime(t.Time.UTC())
	return &d
}

func newDateTime(t time.Time) *models.DateTime {
	d := models.NewDateTime(t.UTC())
	return &d
}

// nullID stores 0 as NULL.
func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id != 0}
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// encodeRoles stores roles as a JSON array; nil roles are stored as NULL.
func encodeRoles(roles []string) (sql.NullString, error) {
	if roles == nil {
		return sql.NullString{}, nil
	}

	b, err := json.Marshal(roles)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("%w: encoding roles: %w", ErrBuildingSQLQuery, err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeRoles(s sql.NullString) ([]string, error) {
	if !s.Valid {
		return nil, nil
	}

	roles := make([]string, 0)
	if err := json.Unmarshal([]byte(s.String), &roles); err != nil {
		return nil, fmt.Errorf("decoding roles: %w", err)
	}
	return roles, nil
}
