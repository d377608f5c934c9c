// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/internal/service"
	"github.com/MKhiriev/go-staff-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

type fakeEmployeeService struct {
	listFn   func(ctx context.Context, filter models.EmployeeFilter) (models.Page[*models.Employee], error)
	getFn    func(ctx context.Context, id int64) (*models.Employee, error)
	createFn func(ctx context.Context, payload serializer.Payload) (*models.Employee, error)
	updateFn func(ctx context.Context, id int64, payload serializer.Payload) (*models.Employee, error)
	jobFn    func(ctx context.Context, id int64) (*models.EmployeeJob, error)
}

func (f *fakeEmployeeService) ListEmployees(ctx context.Context, filter models.EmployeeFilter) (models.Page[*models.Employee], error) {
	return f.listFn(ctx, filter)
}

func (f *fakeEmployeeService) GetEmployee(ctx context.Context, id int64) (*models.Employee, error) {
	return f.getFn(ctx, id)
}

func (f *fakeEmployeeService) CreateEmployee(ctx context.Context, payload serializer.Payload) (*models.Employee, error) {
	return f.createFn(ctx, payload)
}

func (f *fakeEmployeeService) UpdateEmployee(ctx context.Context, id int64, payload serializer.Payload) (*models.Employee, error) {
	return f.updateFn(ctx, id, payload)
}

func (f *fakeEmployeeService) GetEmployeeJob(ctx context.Context, id int64) (*models.EmployeeJob, error) {
	return f.jobFn(ctx, id)
}

type fakeEmployeeJobService struct {
	listFn   func(ctx context.Context, pagination models.Pagination) (models.Page[*models.EmployeeJob], error)
	getFn    func(ctx context.Context, id int64) (*models.EmployeeJob, error)
	createFn func(ctx context.Context, payload serializer.Payload) (*models.EmployeeJob, error)
}

func (f *fakeEmployeeJobService) ListEmployeeJobs(ctx context.Context, pagination models.Pagination) (models.Page[*models.EmployeeJob], error) {
	return f.listFn(ctx, pagination)
}

func (f *fakeEmployeeJobService) GetEmployeeJob(ctx context.Context, id int64) (*models.EmployeeJob, error) {
	return f.getFn(ctx, id)
}

func (f *fakeEmployeeJobService) CreateEmployeeJob(ctx context.Context, payload serializer.Payload) (*models.EmployeeJob, error) {
	return f.createFn(ctx, payload)
}

type fakeUserService struct {
	listFn   func(ctx context.Context, filter models.UserFilter) (models.Page[*models.User], error)
	getFn    func(ctx context.Context, id int64) (*models.User, error)
	createFn func(ctx context.Context, payload serializer.Payload) (*models.User, error)
	updateFn func(ctx context.Context, id int64, payload serializer.Payload) (*models.User, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeUserService) ListUsers(ctx context.Context, filter models.UserFilter) (models.Page[*models.User], error) {
	return f.listFn(ctx, filter)
}

func (f *fakeUserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return f.getFn(ctx, id)
}

func (f *fakeUserService) CreateUser(ctx context.Context, payload serializer.Payload) (*models.User, error) {
	return f.createFn(ctx, payload)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, id int64, payload serializer.Payload) (*models.User, error) {
	return f.updateFn(ctx, id, payload)
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakeAuthService struct {
	loginFn      func(ctx context.Context, credentials models.Credentials) (models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (f *fakeAuthService) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	return f.loginFn(ctx, credentials)
}

func (f *fakeAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return f.parseTokenFn(ctx, tokenString)
}

type fakeAppInfoService struct {
	version models.AppVersion
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) models.AppVersion {
	return f.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestServices() *service.Services {
	return &service.Services{
		EmployeeService:    &fakeEmployeeService{},
		EmployeeJobService: &fakeEmployeeJobService{},
		UserService:        &fakeUserService{},
		AuthService:        &fakeAuthService{},
		AppInfoService:     &fakeAppInfoService{},
	}
}

func newTestRouter(services *service.Services, signKey string) http.Handler {
	h := NewHandler(services, config.App{TokenSignKey: signKey}, logger.Nop())
	return h.Init()
}

func doRequest(t *testing.T, router http.Handler, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeDocument(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &doc), rr.Body.String())
	return doc
}

func fixedTime() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

func employeeFixture() *models.Employee {
	hired := models.NewDateTime(fixedTime())
	return &models.Employee{
		ID:         5,
		Name:       "Ada",
		Hired:      &hired,
		Experience: intPtr(3),
		Salary:     "1200.50",
		Job:        &models.EmployeeJob{ID: 2, Title: "dev"},
		Owner:      &models.User{ID: 7, Username: "john"},
	}
}

func userFixture() *models.User {
	return &models.User{
		ID:                7,
		Username:          "john",
		UsernameCanonical: "john",
		Email:             "john@example.com",
		Enabled:           boolPtr(true),
		Password:          "hash",
		ConfirmationToken: "foo",
		RegistrationDate:  models.NewDateTime(fixedTime()),
		Roles:             []string{"ROLE_USER"},
	}
}
