// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/internal/store"
	"github.com/MKhiriev/go-staff-api/internal/validators"
	"github.com/MKhiriev/go-staff-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmployees(t *testing.T) {
	services := newTestServices()
	var got models.EmployeeFilter
	services.EmployeeService = &fakeEmployeeService{
		listFn: func(_ context.Context, filter models.EmployeeFilter) (models.Page[*models.Employee], error) {
			got = filter
			return models.Page[*models.Employee]{
				Items:      []*models.Employee{employeeFixture()},
				TotalItems: 3,
				Pagination: models.Pagination{Page: 2, ItemsPerPage: 2},
			}, nil
		},
	}

	rr := doRequest(t, newTestRouter(services, ""), http.MethodGet,
		"/api/employees?job=2&order%5Bname%5D=desc&order%5Bid%5D=asc&page=2", "")

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, contentTypeJSONLD, rr.Header().Get("Content-Type"))

	assert.Equal(t, []int64{2}, got.JobIDs)
	assert.Equal(t, []models.OrderBy{
		{Field: "name", Direction: models.OrderDesc},
		{Field: "id", Direction: models.OrderAsc},
	}, got.Order)
	assert.Equal(t, 2, got.Page)

	doc := decodeDocument(t, rr)
	assert.Equal(t, "hydra:Collection", doc["@type"])
	assert.Equal(t, float64(3), doc["hydra:totalItems"])

	members := doc["hydra:member"].([]any)
	require.Len(t, members, 1)
	member := members[0].(map[string]any)
	assert.Equal(t, "/api/employees/5", member["@id"])
	assert.Equal(t, "/api/employee_jobs/2", member["job"])
	assert.Equal(t, "/api/users/7", member["owner"])
	assert.Equal(t, "1200.50", member["salary"])

	view := doc["hydra:view"].(map[string]any)
	assert.Contains(t, view["hydra:previous"], "page=1")
	assert.Contains(t, view["hydra:first"], "job=2")
	assert.NotContains(t, view, "hydra:next")
}

func TestListEmployees_InvalidPage(t *testing.T) {
	for _, page := range []string{"0", "-1", "abc"} {
		t.Run(page, func(t *testing.T) {
			rr := doRequest(t, newTestRouter(newTestServices(), ""), http.MethodGet, "/api/employees?page="+page, "")

			require.Equal(t, http.StatusBadRequest, rr.Code)
			doc := decodeDocument(t, rr)
			assert.Equal(t, "hydra:Error", doc["@type"])
			assert.Equal(t, "Page should not be less than 1", doc["hydra:description"])
		})
	}
}

func TestListEmployees_HugePage(t *testing.T) {
	rr := doRequest(t, newTestRouter(newTestServices(), ""), http.MethodGet, "/api/employees?page=4611686018427387905", "")

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Page is out of range", decodeDocument(t, rr)["hydra:description"])
}

func TestGetEmployee(t *testing.T) {
	services := newTestServices()
	services.EmployeeService = &fakeEmployeeService{
		getFn: func(_ context.Context, id int64) (*models.Employee, error) {
			assert.Equal(t, int64(5), id)
			return employeeFixture(), nil
		},
	}

	rr := doRequest(t, newTestRouter(services, ""), http.MethodGet, "/api/employees/5", "")

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	doc := decodeDocument(t, rr)
	assert.Equal(t, float64(5), doc["id"])
	assert.Equal(t, "Ada", doc["name"])
	assert.Equal(t, "2026-01-02T03:04:05+00:00", doc["hired"])
	assert.Nil(t, doc["firedDate"])

	owner := doc["owner"].(map[string]any)
	assert.Equal(t, "/api/users/7", owner["@id"])
	assert.Equal(t, "john", owner["username"])
	assert.NotContains(t, owner, "email")
}

func TestGetEmployee_NotFound(t *testing.T) {
	services := newTestServices()
	services.EmployeeService = &fakeEmployeeService{
		getFn: func(context.Context, int64) (*models.Employee, error) {
			return nil, store.ErrEmployeeNotFound
		},
	}
	router := newTestRouter(services, "")

	for _, target := range []string{"/api/employees/404", "/api/employees/abc"} {
		rr := doRequest(t, router, http.MethodGet, target, "")

		require.Equal(t, http.StatusNotFound, rr.Code, target)
		assert.Equal(t, "Not Found", decodeDocument(t, rr)["hydra:description"])
	}
}

func TestGetEmployeeJobSubresource(t *testing.T) {
	services := newTestServices()
	services.EmployeeService = &fakeEmployeeService{
		jobFn: func(_ context.Context, id int64) (*models.EmployeeJob, error) {
			assert.Equal(t, int64(5), id)
			return &models.EmployeeJob{ID: 2, Title: "dev"}, nil
		},
	}

	rr := doRequest(t, newTestRouter(services, ""), http.MethodGet, "/api/employees/5/job", "")

	require.Equal(t, http.StatusOK, rr.Code)
	doc := decodeDocument(t, rr)
	assert.Equal(t, "/api/employee_jobs/2", doc["@id"])
	assert.Equal(t, "dev", doc["title"])
}

func TestCreateEmployee(t *testing.T) {
	services := newTestServices()
	services.EmployeeService = &fakeEmployeeService{
		createFn: func(_ context.Context, payload serializer.Payload) (*models.Employee, error) {
			assert.True(t, payload.Has("name"))
			return employeeFixture(), nil
		},
	}

	rr := doRequest(t, newTestRouter(services, ""), http.MethodPost, "/api/employees", `{"name":"Ada"}`)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	assert.Equal(t, "/api/employees/5", rr.Header().Get("Content-Location"))
	assert.Equal(t, "/api/employees/5", decodeDocument(t, rr)["@id"])
}

func TestCreateEmployee_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantType    string
		description string
	}{
		{
			name:        "syntax error",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
			wantType:    "hydra:Error",
			description: "Syntax error",
		},
		{
			name:        "unknown reference",
			body:        `{"job":"/api/employee_jobs/9"}`,
			serviceErr:  serializer.ItemNotFoundError("/api/employee_jobs/9"),
			wantStatus:  http.StatusBadRequest,
			wantType:    "hydra:Error",
			description: `Item not found for "/api/employee_jobs/9".`,
		},
		{
			name:        "constraint violation",
			body:        `{"name":"A"}`,
			serviceErr:  validators.NewViolation("name", "This value is too short."),
			wantStatus:  http.StatusBadRequest,
			wantType:    "ConstraintViolationList",
			description: "name: This value is too short.",
		},
		{
			name:        "storage failure",
			body:        `{"name":"Ada"}`,
			serviceErr:  fmt.Errorf("%w: %w", store.ErrExecutingQuery, assert.AnError),
			wantStatus:  http.StatusInternalServerError,
			wantType:    "hydra:Error",
			description: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := newTestServices()
			services.EmployeeService = &fakeEmployeeService{
				createFn: func(context.Context, serializer.Payload) (*models.Employee, error) {
					return nil, tt.serviceErr
				},
			}

			rr := doRequest(t, newTestRouter(services, ""), http.MethodPost, "/api/employees", tt.body)

			require.Equal(t, tt.wantStatus, rr.Code)
			doc := decodeDocument(t, rr)
			assert.Equal(t, tt.wantType, doc["@type"])
			assert.Equal(t, tt.description, doc["hydra:description"])
		})
	}
}

func TestCreateEmployee_BodyTooLarge(t *testing.T) {
	services := newTestServices()
	services.EmployeeService = &fakeEmployeeService{
		createFn: func(context.Context, serializer.Payload) (*models.Employee, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	body := `{"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`

	rr := doRequest(t, newTestRouter(services, ""), http.MethodPost, "/api/employees", body)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Equal(t, "Request body is too large", decodeDocument(t, rr)["hydra:description"])
}

func TestCreateEmployee_ViolationsBody(t *testing.T) {
	services := newTestServices()
	services.EmployeeService = &fakeEmployeeService{
		createFn: func(context.Context, serializer.Payload) (*models.Employee, error) {
			return nil, validators.ViolationList{
				{PropertyPath: "name", Message: "This value should not be blank."},
				{PropertyPath: "owner", Message: "This value should not be null."},
			}
		},
	}

	rr := doRequest(t, newTestRouter(services, ""), http.MethodPost, "/api/employees", `{}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	violations := decodeDocument(t, rr)["violations"].([]any)
	require.Len(t, violations, 2)
	assert.Equal(t, map[string]any{"propertyPath": "owner", "message": "This value should not be null."}, violations[1])
}

func TestUpdateEmployee(t *testing.T) {
	services := newTestServices()
	services.EmployeeService = &fakeEmployeeService{
		updateFn: func(_ context.Context, id int64, payload serializer.Payload) (*models.Employee, error) {
			assert.Equal(t, int64(5), id)
			assert.True(t, payload.Has("salary"))
			return employeeFixture(), nil
		},
	}

	rr := doRequest(t, newTestRouter(services, ""), http.MethodPut, "/api/employees/5", `{"salary":"1200.50"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1200.50", decodeDocument(t, rr)["salary"])
}

func TestEmployees_UnregisteredMethods(t *testing.T) {
	router := newTestRouter(newTestServices(), "")

	for _, method := range []string{http.MethodDelete, http.MethodPatch} {
		rr := doRequest(t, router, method, "/api/employees/5", "")
		assert.Equal(t, http.StatusNotFound, rr.Code, method)
	}
}
