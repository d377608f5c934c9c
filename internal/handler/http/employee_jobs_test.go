// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/internal/store"
	"github.com/MKhiriev/go-staff-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEmployeeJobs(t *testing.T) {
	services := newTestServices()
	services.EmployeeJobService = &fakeEmployeeJobService{
		listFn: func(_ context.Context, pagination models.Pagination) (models.Page[*models.EmployeeJob], error) {
			assert.Equal(t, 1, pagination.Page)
			return models.Page[*models.EmployeeJob]{
				Items:      []*models.EmployeeJob{{ID: 1, Title: "dev"}, {ID: 2, Title: "ops"}},
				TotalItems: 2,
				Pagination: models.Pagination{Page: 1, ItemsPerPage: 30},
			}, nil
		},
	}

	rr := doRequest(t, newTestRouter(services, ""), http.MethodGet, "/api/employee_jobs", "")

	require.Equal(t, http.StatusOK, rr.Code)
	doc := decodeDocument(t, rr)
	assert.Len(t, doc["hydra:member"], 2)
	assert.NotContains(t, doc, "hydra:search")
	assert.Equal(t, "/api/employee_jobs?page=1", doc["hydra:view"].(map[string]any)["@id"])
}

func TestGetEmployeeJob(t *testing.T) {
	services := newTestServices()
	services.EmployeeJobService = &fakeEmployeeJobService{
		getFn: func(_ context.Context, id int64) (*models.EmployeeJob, error) {
			if id == 1 {
				return &models.EmployeeJob{ID: 1, Title: "dev"}, nil
			}
			return nil, store.ErrEmployeeJobNotFound
		},
	}
	router := newTestRouter(services, "")

	rr := doRequest(t, router, http.MethodGet, "/api/employee_jobs/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "dev", decodeDocument(t, rr)["title"])

	rr = doRequest(t, router, http.MethodGet, "/api/employee_jobs/2", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateEmployeeJob(t *testing.T) {
	services := newTestServices()
	services.EmployeeJobService = &fakeEmployeeJobService{
		createFn: func(_ context.Context, payload serializer.Payload) (*models.EmployeeJob, error) {
			assert.True(t, payload.Has("title"))
			return &models.EmployeeJob{ID: 3, Title: "qa"}, nil
		},
	}

	rr := doRequest(t, newTestRouter(services, ""), http.MethodPost, "/api/employee_jobs", `{"title":"qa"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/api/employee_jobs/3", rr.Header().Get("Content-Location"))
}
