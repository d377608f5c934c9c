// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-staff-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	jobs  map[int64]*models.EmployeeJob
	users map[int64]*models.User
	err   error
}

func (f *fakeResolver) EmployeeJob(_ context.Context, id int64) (*models.EmployeeJob, error) {
	if f.err != nil {
		return nil, f.err
	}
	if j, ok := f.jobs[id]; ok {
		return j, nil
	}
	return nil, ErrItemNotFound
}

func (f *fakeResolver) User(_ context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, ErrItemNotFound
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		jobs:  map[int64]*models.EmployeeJob{2: {ID: 2, Title: "dev"}},
		users: map[int64]*models.User{7: {ID: 7, Username: "john"}},
	}
}

func mustPayload(t *testing.T, body string) Payload {
	t.Helper()
	p, err := ParsePayload([]byte(body))
	require.NoError(t, err)
	return p
}

func requireDenormalizationError(t *testing.T, err error, message string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidPayload)
	var de *DenormalizationError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, message, de.Message)
}

// ─────────────────────────────────────────────
// ParsePayload
// ─────────────────────────────────────────────

func TestParsePayload_SyntaxErrors(t *testing.T) {
	for _, body := range []string{``, `{`, `[]`, `"x"`, `12`, `null`} {
		_, err := ParsePayload([]byte(body))
		requireDenormalizationError(t, err, "Syntax error")
	}
}

func TestParsePayload_Has(t *testing.T) {
	p := mustPayload(t, `{"a": null, "b": 1}`)

	assert.True(t, p.Has("a"))
	assert.True(t, p.Has("b"))
	assert.False(t, p.Has("c"))
}

// ─────────────────────────────────────────────
// Employee
// ─────────────────────────────────────────────

func TestDenormalizer_Employee_Success(t *testing.T) {
	d := NewDenormalizer(newFakeResolver())
	e := &models.Employee{}

	err := d.Employee(context.Background(), mustPayload(t, `{
		"id": 99,
		"name": "Alice",
		"hired": "2020-01-02T09:30:00+00:00",
		"experience": 4,
		"salary": "1500.50",
		"firedDate": null,
		"job": "/api/employee_jobs/2",
		"owner": 7,
		"unknown": true
	}`), e)

	require.NoError(t, err)
	assert.Zero(t, e.ID, "id is never written")
	assert.Equal(t, "Alice", e.Name)
	require.NotNil(t, e.Hired)
	assert.True(t, e.Hired.Equal(time.Date(2020, 1, 2, 9, 30, 0, 0, time.UTC)))
	require.NotNil(t, e.Experience)
	assert.Equal(t, 4, *e.Experience)
	assert.Equal(t, "1500.50", e.Salary)
	assert.Nil(t, e.FiredDate)
	require.NotNil(t, e.Job)
	assert.Equal(t, "dev", e.Job.Title)
	require.NotNil(t, e.Owner)
	assert.Equal(t, "john", e.Owner.Username)
}

func TestDenormalizer_Employee_PartialKeepsOtherAttributes(t *testing.T) {
	d := NewDenormalizer(newFakeResolver())
	e := &models.Employee{Name: "Old", Salary: "10.00"}

	err := d.Employee(context.Background(), mustPayload(t, `{"name": "New"}`), e)

	require.NoError(t, err)
	assert.Equal(t, "New", e.Name)
	assert.Equal(t, "10.00", e.Salary)
}

func TestDenormalizer_Employee_SalaryAsNumber(t *testing.T) {
	d := NewDenormalizer(newFakeResolver())
	e := &models.Employee{}

	require.NoError(t, d.Employee(context.Background(), mustPayload(t, `{"salary": 1200.5}`), e))
	assert.Equal(t, "1200.5", e.Salary)
}

func TestDenormalizer_Employee_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "name not a string",
			body: `{"name": 12}`,
			want: `The type of the "name" attribute must be "string", "integer" given.`,
		},
		{
			name: "name null",
			body: `{"name": null}`,
			want: `The type of the "name" attribute must be "string", "NULL" given.`,
		},
		{
			name: "experience double",
			body: `{"experience": 1.5}`,
			want: `The type of the "experience" attribute must be "int", "double" given.`,
		},
		{
			name: "experience string",
			body: `{"experience": "3"}`,
			want: `The type of the "experience" attribute must be "int", "string" given.`,
		},
		{
			name: "hired unparsable",
			body: `{"hired": "yesterday"}`,
			want: `Parsing datetime string "yesterday" failed.`,
		},
		{
			name: "hired empty",
			body: `{"hired": ""}`,
			want: "The data is either an empty string or null, you should pass a string that can be parsed with the passed format or a valid DateTime string.",
		},
		{
			name: "hired boolean",
			body: `{"hired": true}`,
			want: `The type of the "hired" attribute must be "string", "boolean" given.`,
		},
		{
			name: "nested job",
			body: `{"job": {"title": "dev"}}`,
			want: `Nested documents for attribute "job" are not allowed. Use IRIs instead.`,
		},
		{
			name: "owner boolean",
			body: `{"owner": false}`,
			want: `Expected IRI or document for resource "User", "boolean" given.`,
		},
		{
			name: "job wrong IRI",
			body: `{"job": "/api/users/2"}`,
			want: `Invalid IRI "/api/users/2".`,
		},
		{
			name: "job missing",
			body: `{"job": "/api/employee_jobs/404"}`,
			want: `Item not found for "/api/employee_jobs/404".`,
		},
		{
			name: "owner missing by id",
			body: `{"owner": 8}`,
			want: `Item not found for "/api/users/8".`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDenormalizer(newFakeResolver())
			err := d.Employee(context.Background(), mustPayload(t, tt.body), &models.Employee{})
			requireDenormalizationError(t, err, tt.want)
		})
	}
}

func TestDenormalizer_Employee_NullRelationClears(t *testing.T) {
	d := NewDenormalizer(newFakeResolver())
	e := &models.Employee{Job: &models.EmployeeJob{ID: 2}}

	require.NoError(t, d.Employee(context.Background(), mustPayload(t, `{"job": null}`), e))
	assert.Nil(t, e.Job)
}

func TestDenormalizer_Employee_ResolverFailurePropagates(t *testing.T) {
	boom := errors.New("db down")
	d := NewDenormalizer(&fakeResolver{err: boom})

	err := d.Employee(context.Background(), mustPayload(t, `{"job": 2}`), &models.Employee{})

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidPayload)
}

func TestDenormalizer_Employee_WriteGroupSkipsOtherAttributes(t *testing.T) {
	d := NewDenormalizer(newFakeResolver(), GroupUserWrite)
	e := &models.Employee{Name: "Keep"}

	require.NoError(t, d.Employee(context.Background(), mustPayload(t, `{"name": "Drop"}`), e))
	assert.Equal(t, "Keep", e.Name)
}

// ─────────────────────────────────────────────
// User
// ─────────────────────────────────────────────

func TestDenormalizer_User_UsernameMirroredThenOverridden(t *testing.T) {
	d := NewDenormalizer(newFakeResolver())

	u := models.NewUser()
	require.NoError(t, d.User(context.Background(), mustPayload(t, `{"username": "john"}`), u))
	assert.Equal(t, "john", u.UsernameCanonical)

	u = models.NewUser()
	require.NoError(t, d.User(context.Background(),
		mustPayload(t, `{"username_canonical": "JOHN", "username": "john"}`), u))
	assert.Equal(t, "john", u.Username)
	assert.Equal(t, "JOHN", u.UsernameCanonical)
}

func TestDenormalizer_User_AllAttributes(t *testing.T) {
	d := NewDenormalizer(newFakeResolver())
	u := models.NewUser()

	err := d.User(context.Background(), mustPayload(t, `{
		"email": "john@example.com",
		"enabled": true,
		"password": "secret",
		"confirmation_token": "bar",
		"registration_date": "2021-06-01",
		"salt": "pepper",
		"roles": ["ROLE_ADMIN"],
		"last_login": null,
		"employees": ["/api/employees/1"]
	}`), u)

	require.NoError(t, err)
	assert.Equal(t, "john@example.com", u.Email)
	assert.True(t, u.IsEnabled())
	assert.Equal(t, "secret", u.Password)
	assert.Equal(t, "bar", u.ConfirmationToken)
	assert.Equal(t, "2021-06-01T00:00:00+00:00", u.RegistrationDate.String())
	require.NotNil(t, u.Salt)
	assert.Equal(t, "pepper", *u.Salt)
	assert.Equal(t, []string{"ROLE_ADMIN"}, u.Roles)
	assert.Nil(t, u.LastLogin)
	assert.Empty(t, u.Employees, "employees are read-only")
}

func TestDenormalizer_User_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "enabled string",
			body: `{"enabled": "yes"}`,
			want: `The type of the "enabled" attribute must be "bool", "string" given.`,
		},
		{
			name: "roles string",
			body: `{"roles": "ROLE_ADMIN"}`,
			want: `The type of the "roles" attribute must be "array", "string" given.`,
		},
		{
			name: "salt number",
			body: `{"salt": 1}`,
			want: `The type of the "salt" attribute must be "string", "integer" given.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDenormalizer(newFakeResolver())
			err := d.User(context.Background(), mustPayload(t, tt.body), models.NewUser())
			requireDenormalizationError(t, err, tt.want)
		})
	}
}

// ─────────────────────────────────────────────
// EmployeeJob
// ─────────────────────────────────────────────

func TestDenormalizer_EmployeeJob(t *testing.T) {
	d := NewDenormalizer(nil)
	j := &models.EmployeeJob{}

	require.NoError(t, d.EmployeeJob(context.Background(), mustPayload(t, `{"id": 3, "title": "qa"}`), j))
	assert.Zero(t, j.ID)
	assert.Equal(t, "qa", j.Title)

	err := d.EmployeeJob(context.Background(), mustPayload(t, `{"title": []}`), j)
	requireDenormalizationError(t, err, `The type of the "title" attribute must be "string", "array" given.`)
}
