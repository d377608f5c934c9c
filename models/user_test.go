// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_Defaults(t *testing.T) {
	before := time.Now()
	u := NewUser()

	assert.Equal(t, DefaultConfirmationToken, u.ConfirmationToken)
	assert.False(t, u.RegistrationDate.Before(before))
	assert.NotNil(t, u.Employees)
	assert.Empty(t, u.Employees)
	assert.Nil(t, u.Roles)
	assert.Nil(t, u.LastLogin)
	assert.False(t, u.IsEnabled())
}

func TestUser_SetUsername_MirrorsCanonical(t *testing.T) {
	u := NewUser().SetUsername("john")

	assert.Equal(t, "john", u.Username)
	assert.Equal(t, "john", u.UsernameCanonical)
}

func TestUser_SetUsernameCanonical_OverridesOnlyCanonical(t *testing.T) {
	u := NewUser().SetUsername("John").SetUsernameCanonical("john")

	assert.Equal(t, "John", u.Username)
	assert.Equal(t, "john", u.UsernameCanonical)
}

func TestUser_SetUsername_AfterCanonicalResetsIt(t *testing.T) {
	u := NewUser().SetUsernameCanonical("custom").SetUsername("mary")

	assert.Equal(t, "mary", u.UsernameCanonical)
}

func TestUser_AddEmployee_SetsOwner(t *testing.T) {
	u := NewUser()
	e := &Employee{Name: "Bob"}

	u.AddEmployee(e)

	require.Len(t, u.Employees, 1)
	assert.Same(t, e, u.Employees[0])
	assert.Same(t, u, e.Owner)
}

func TestUser_AddEmployee_Idempotent(t *testing.T) {
	u := NewUser()
	e := &Employee{Name: "Bob"}

	u.AddEmployee(e).AddEmployee(e)

	assert.Len(t, u.Employees, 1)
}

func TestUser_AddEmployee_SamePersistedIDIsNotDuplicated(t *testing.T) {
	u := &User{ID: 1}
	u.AddEmployee(&Employee{ID: 7})
	u.AddEmployee(&Employee{ID: 7})

	assert.Len(t, u.Employees, 1)
}

func TestUser_AddEmployee_Nil(t *testing.T) {
	u := NewUser()
	u.AddEmployee(nil)

	assert.Empty(t, u.Employees)
}

func TestUser_RemoveEmployee_ClearsOwner(t *testing.T) {
	u := NewUser()
	e := &Employee{Name: "Bob"}
	u.AddEmployee(e)

	u.RemoveEmployee(e)

	assert.Empty(t, u.Employees)
	assert.Nil(t, e.Owner)
}

func TestUser_RemoveEmployee_KeepsForeignOwner(t *testing.T) {
	u := NewUser()
	other := NewUser()
	e := &Employee{Name: "Bob"}
	u.AddEmployee(e)

	// ownership moved elsewhere without going through u
	e.Owner = other
	u.RemoveEmployee(e)

	assert.Empty(t, u.Employees)
	assert.Same(t, other, e.Owner)
}

func TestUser_RemoveEmployee_Absent(t *testing.T) {
	u := NewUser()
	other := NewUser()
	e := &Employee{Name: "Bob"}
	other.AddEmployee(e)

	u.RemoveEmployee(e)

	assert.Same(t, other, e.Owner)
	assert.Len(t, other.Employees, 1)
}

func TestEmployee_OwnedBy(t *testing.T) {
	tests := []struct {
		name  string
		owner *User
		user  *User
		want  bool
	}{
		{name: "no owner", owner: nil, user: &User{ID: 1}, want: false},
		{name: "nil user", owner: &User{ID: 1}, user: nil, want: false},
		{name: "same persisted id", owner: &User{ID: 3}, user: &User{ID: 3}, want: true},
		{name: "different ids", owner: &User{ID: 3}, user: &User{ID: 4}, want: false},
		{name: "transient users are compared by identity", owner: &User{}, user: &User{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &Employee{Owner: tt.owner}
			assert.Equal(t, tt.want, e.OwnedBy(tt.user))
		})
	}
}
