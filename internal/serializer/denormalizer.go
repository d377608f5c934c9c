// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/go-staff-api/models"
)

// ItemResolver loads the items referenced by relations in a payload.
// Implementations return [ErrItemNotFound] for unknown ids.
type ItemResolver interface {
	EmployeeJob(ctx context.Context, id int64) (*models.EmployeeJob, error)
	User(ctx context.Context, id int64) (*models.User, error)
}

// Denormalizer applies payloads onto resources under a fixed set of groups.
// Attributes outside the groups, and unknown attributes, are ignored.
type Denormalizer struct {
	resolver ItemResolver
	groups   []Group
}

// NewDenormalizer returns a Denormalizer resolving relations with resolver.
func NewDenormalizer(resolver ItemResolver, groups ...Group) *Denormalizer {
	return &Denormalizer{
		resolver: resolver,
		groups:   groups,
	}
}

// Employee applies payload onto e. It stops at the first invalid attribute.
func (d *Denormalizer) Employee(ctx context.Context, payload Payload, e *models.Employee) error {
	for _, attr := range employeeAttributes {
		raw, ok := payload[attr.name]
		if !ok || !attr.writable(d.groups) {
			continue
		}

		if err := d.setEmployeeAttribute(ctx, e, attr.name, raw); err != nil {
			return err
		}
	}
	return nil
}

func (d *Denormalizer) setEmployeeAttribute(ctx context.Context, e *models.Employee, name string, raw json.RawMessage) error {
	var err error

	switch name {
	case "name":
		e.Name, err = decodeString(name, raw)
	case "hired":
		var hired models.DateTime
		if hired, err = decodeDateTime(name, raw); err == nil {
			e.Hired = &hired
		}
	case "experience":
		var experience int
		if experience, err = decodeInt(name, raw); err == nil {
			e.Experience = &experience
		}
	case "salary":
		e.Salary, err = decodeDecimal(name, raw)
	case "firedDate":
		e.FiredDate, err = decodeNullableDateTime(name, raw)
	case "job":
		e.Job, err = d.employeeJob(ctx, name, raw)
	case "owner":
		e.Owner, err = d.user(ctx, name, raw)
	}

	return err
}

// EmployeeJob applies payload onto j.
func (d *Denormalizer) EmployeeJob(_ context.Context, payload Payload, j *models.EmployeeJob) error {
	for _, attr := range employeeJobAttributes {
		raw, ok := payload[attr.name]
		if !ok || !attr.writable(d.groups) {
			continue
		}

		if attr.name == "title" {
			title, err := decodeString(attr.name, raw)
			if err != nil {
				return err
			}
			j.Title = title
		}
	}
	return nil
}

// User applies payload onto u. username is applied before
// username_canonical whatever their order in the document.
func (d *Denormalizer) User(_ context.Context, payload Payload, u *models.User) error {
	for _, attr := range userAttributes {
		raw, ok := payload[attr.name]
		if !ok || !attr.writable(d.groups) {
			continue
		}

		if err := setUserAttribute(u, attr.name, raw); err != nil {
			return err
		}
	}
	return nil
}

func setUserAttribute(u *models.User, name string, raw json.RawMessage) error {
	switch name {
	case "username":
		username, err := decodeString(name, raw)
		if err != nil {
			return err
		}
		u.SetUsername(username)
	case "username_canonical":
		canonical, err := decodeString(name, raw)
		if err != nil {
			return err
		}
		u.SetUsernameCanonical(canonical)
	case "email":
		email, err := decodeString(name, raw)
		if err != nil {
			return err
		}
		u.Email = email
	case "enabled":
		enabled, err := decodeBool(name, raw)
		if err != nil {
			return err
		}
		u.Enabled = &enabled
	case "password":
		password, err := decodeString(name, raw)
		if err != nil {
			return err
		}
		u.Password = password
	case "confirmation_token":
		token, err := decodeString(name, raw)
		if err != nil {
			return err
		}
		u.ConfirmationToken = token
	case "registration_date":
		registered, err := decodeDateTime(name, raw)
		if err != nil {
			return err
		}
		u.RegistrationDate = registered
	case "salt":
		salt, err := decodeNullableString(name, raw)
		if err != nil {
			return err
		}
		u.Salt = salt
	case "roles":
		roles, err := decodeNullableStringList(name, raw)
		if err != nil {
			return err
		}
		u.Roles = roles
	case "last_login":
		lastLogin, err := decodeNullableDateTime(name, raw)
		if err != nil {
			return err
		}
		u.LastLogin = lastLogin
	}

	return nil
}

func (d *Denormalizer) employeeJob(ctx context.Context, attr string, raw json.RawMessage) (*models.EmployeeJob, error) {
	ref, err := decodeReference(attr, EmployeeJobResource, raw)
	if err != nil || ref == nil {
		return nil, err
	}

	job, err := d.resolver.EmployeeJob(ctx, ref.id)
	if errors.Is(err, ErrItemNotFound) {
		return nil, ItemNotFoundError(ref.iri)
	}
	return job, err
}

func (d *Denormalizer) user(ctx context.Context, attr string, raw json.RawMessage) (*models.User, error) {
	ref, err := decodeReference(attr, UserResource, raw)
	if err != nil || ref == nil {
		return nil, err
	}

	user, err := d.resolver.User(ctx, ref.id)
	if errors.Is(err, ErrItemNotFound) {
		return nil, ItemNotFoundError(ref.iri)
	}
	return user, err
}
