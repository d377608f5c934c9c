// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultConfirmationToken is assigned to every newly constructed user.
const DefaultConfirmationToken = "foo"

// User represents an account that owns employees.
//
// Password holds a bcrypt hash once the user is persisted; plain text only
// travels inside a write request.
type User struct {
	ID int64 `json:"id"`

	// Username is unique (constraint username_uniq).
	Username          string `json:"username" validate:"required,max=15"`
	UsernameCanonical string `json:"username_canonical" validate:"required,max=15"`

	Email   string `json:"email" validate:"required,max=60"`
	Enabled *bool  `json:"enabled" validate:"required"`

	Password          string `json:"password" validate:"required,max=255"`
	ConfirmationToken string `json:"confirmation_token" validate:"required,max=255"`

	RegistrationDate DateTime `json:"registration_date"`

	Salt      *string   `json:"salt" validate:"omitempty,max=255"`
	Roles     []string  `json:"roles"`
	LastLogin *DateTime `json:"last_login"`

	// Employees is the inverse side of Employee.Owner and is never persisted
	// from here.
	Employees []*Employee `json:"employees"`
}

// NewUser returns a user with the construction defaults applied:
// the default confirmation token, a registration date of now and an empty
// employee collection.
func NewUser() *User {
	return &User{
		ConfirmationToken: DefaultConfirmationToken,
		RegistrationDate:  NewDateTime(time.Now()),
		Employees:         make([]*Employee, 0),
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SetUsername sets the username and mirrors it into the canonical username.
func (u *User) SetUsername(username string) *User {
	u.Username = username
	u.UsernameCanonical = username
	return u
}

// SetUsernameCanonical overrides the canonical username only.
func (u *User) SetUsernameCanonical(usernameCanonical string) *User {
	u.UsernameCanonical = usernameCanonical
	return u
}

// IsEnabled reports whether the account is enabled. Unset means disabled.
func (u *User) IsEnabled() bool {
	return u.Enabled != nil && *u.Enabled
}

// HasEmployee reports whether e is in the user's collection.
func (u *User) HasEmployee(e *Employee) bool {
	return u.indexOf(e) >= 0
}

// AddEmployee appends e when absent and makes the user its owner.
func (u *User) AddEmployee(e *Employee) *User {
	if e == nil {
		return u
	}

	if !u.HasEmployee(e) {
		u.Employees = append(u.Employees, e)
		e.Owner = u
	}

	return u
}

// RemoveEmployee drops e from the collection and clears its owner if the
// owner is still this user.
func (u *User) RemoveEmployee(e *Employee) *User {
	i := u.indexOf(e)
	if i < 0 {
		return u
	}

	u.Employees = append(u.Employees[:i], u.Employees[i+1:]...)
	if e.OwnedBy(u) {
		e.Owner = nil
	}

	return u
}

func (u *User) indexOf(e *Employee) int {
	if e == nil {
		return -1
	}

	for i, existing := range u.Employees {
		if existing == e || (e.ID != 0 && existing.ID == e.ID) {
			return i
		}
	}

	return -1
}

func sameUser(a, b *User) bool {
	if a == b {
		return true
	}
	return a.ID != 0 && a.ID == b.ID
}
