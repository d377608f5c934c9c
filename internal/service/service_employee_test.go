// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-staff-api/internal/config"
	"github.com/MKhiriev/go-staff-api/internal/logger"
	"github.com/MKhiriev/go-staff-api/internal/mock"
	"github.com/MKhiriev/go-staff-api/internal/serializer"
	"github.com/MKhiriev/go-staff-api/internal/store"
	"github.com/MKhiriev/go-staff-api/internal/validators"
	"github.com/MKhiriev/go-staff-api/models"
)

var (
	errStorage = errors.New("storage error")

	testAppConfig = config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "go-staff-api",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
		EmployeesPerPage: 2,
		ItemsPerPage:     30,
	}
)

// newTestEmployeeSvc wires employeeService to gomock repositories
// and the real entity validator.
func newTestEmployeeSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	EmployeeService,
	*mock.MockEmployeeRepository,
	*mock.MockEmployeeJobRepository,
	*mock.MockUserRepository,
) {
	t.Helper()
	employees := mock.NewMockEmployeeRepository(ctrl)
	jobs := mock.NewMockEmployeeJobRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewEmployeeService(employees, jobs, users, validators.NewEntityValidator(), testAppConfig, logger.Nop())

	return svc, employees, jobs, users
}

func mustPayload(t *testing.T, body string) serializer.Payload {
	t.Helper()
	payload, err := serializer.ParsePayload([]byte(body))
	require.NoError(t, err)
	return payload
}

func employeeFixture() *models.Employee {
	hired, _ := models.ParseDateTime("2020-01-01")
	experience := 3
	return &models.Employee{
		ID:         5,
		Name:       "John",
		Hired:      &hired,
		Experience: &experience,
		Salary:     "1000.00",
		Job:        &models.EmployeeJob{ID: 2, Title: "dev"},
		Owner:      &models.User{ID: 7, Username: "john"},
	}
}

// ── ListEmployees ────────────────────────────────────────────────────────────

func TestEmployeeService_ListEmployees_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)

	want := models.EmployeeFilter{
		JobIDs:     []int64{2},
		Order:      []models.OrderBy{{Field: "name", Direction: models.OrderDesc}},
		Pagination: models.Pagination{Page: 3, ItemsPerPage: 2},
	}
	items := []*models.Employee{employeeFixture()}

	gomock.InOrder(
		employees.EXPECT().ListEmployees(gomock.Any(), want).Return(items, nil),
		employees.EXPECT().CountEmployees(gomock.Any(), want).Return(5, nil),
	)

	page, err := svc.ListEmployees(context.Background(), models.EmployeeFilter{
		JobIDs:     []int64{2},
		Order:      []models.OrderBy{{Field: "name", Direction: models.OrderDesc}},
		Pagination: models.Pagination{Page: 3, ItemsPerPage: 100},
	})

	require.NoError(t, err)
	assert.Equal(t, items, page.Items)
	assert.Equal(t, 5, page.TotalItems)
	assert.Equal(t, want.Pagination, page.Pagination)
	assert.Equal(t, 3, page.LastPage())
}

func TestEmployeeService_ListEmployees_PageDefaultsToFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)

	want := models.EmployeeFilter{Pagination: models.Pagination{Page: 1, ItemsPerPage: 2}}
	employees.EXPECT().ListEmployees(gomock.Any(), want).Return([]*models.Employee{}, nil)
	employees.EXPECT().CountEmployees(gomock.Any(), want).Return(0, nil)

	page, err := svc.ListEmployees(context.Background(), models.EmployeeFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestEmployeeService_ListEmployees_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)

	employees.EXPECT().ListEmployees(gomock.Any(), gomock.Any()).Return(nil, errStorage)

	_, err := svc.ListEmployees(context.Background(), models.EmployeeFilter{})

	require.ErrorIs(t, err, errStorage)
}

func TestEmployeeService_ListEmployees_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)

	employees.EXPECT().ListEmployees(gomock.Any(), gomock.Any()).Return([]*models.Employee{}, nil)
	employees.EXPECT().CountEmployees(gomock.Any(), gomock.Any()).Return(0, errStorage)

	_, err := svc.ListEmployees(context.Background(), models.EmployeeFilter{})

	require.ErrorIs(t, err, errStorage)
}

// ── GetEmployee / GetEmployeeJob ─────────────────────────────────────────────

func TestEmployeeService_GetEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)
	employee := employeeFixture()

	employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(employee, nil)

	got, err := svc.GetEmployee(context.Background(), 5)

	require.NoError(t, err)
	assert.Same(t, employee, got)
}

func TestEmployeeService_GetEmployee_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)

	employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(nil, store.ErrEmployeeNotFound)

	_, err := svc.GetEmployee(context.Background(), 5)

	require.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

func TestEmployeeService_GetEmployeeJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)

	employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(employeeFixture(), nil)

	job, err := svc.GetEmployeeJob(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, &models.EmployeeJob{ID: 2, Title: "dev"}, job)
}

func TestEmployeeService_GetEmployeeJob_NoJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)
	employee := employeeFixture()
	employee.Job = nil

	employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(employee, nil)

	_, err := svc.GetEmployeeJob(context.Background(), 5)

	require.ErrorIs(t, err, store.ErrEmployeeJobNotFound)
}

// ── CreateEmployee ───────────────────────────────────────────────────────────

const validEmployeePayload = `{
	"name": "John",
	"hired": "2020-01-01",
	"experience": 3,
	"salary": "1000.00",
	"job": "/api/employee_jobs/2",
	"owner": 7
}`

func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, jobs, users := newTestEmployeeSvc(t, ctrl)
	job := &models.EmployeeJob{ID: 2, Title: "dev"}
	owner := &models.User{ID: 7, Username: "john"}
	stored := employeeFixture()

	gomock.InOrder(
		jobs.EXPECT().FindEmployeeJob(gomock.Any(), int64(2)).Return(job, nil),
		users.EXPECT().FindUser(gomock.Any(), int64(7)).Return(owner, nil),
		employees.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *models.Employee) (int64, error) {
				assert.Equal(t, "John", e.Name)
				assert.Equal(t, "1000.00", e.Salary)
				require.NotNil(t, e.Experience)
				assert.Equal(t, 3, *e.Experience)
				assert.Same(t, job, e.Job)
				assert.Same(t, owner, e.Owner)
				assert.Nil(t, e.FiredDate)
				return 5, nil
			},
		),
		employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(stored, nil),
	)

	got, err := svc.CreateEmployee(context.Background(), mustPayload(t, validEmployeePayload))

	require.NoError(t, err)
	assert.Same(t, stored, got)
}

func TestEmployeeService_CreateEmployee_SalaryScale(t *testing.T) {
	tests := []struct {
		name   string
		salary string
		want   string
	}{
		{name: "integer number", salary: `1500`, want: "1500.00"},
		{name: "one fraction digit", salary: `"1.5"`, want: "1.50"},
		{name: "leading zeros", salary: `"007.25"`, want: "7.25"},
		{name: "already scaled", salary: `"99999.99"`, want: "99999.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, employees, jobs, users := newTestEmployeeSvc(t, ctrl)

			jobs.EXPECT().FindEmployeeJob(gomock.Any(), int64(2)).Return(&models.EmployeeJob{ID: 2, Title: "dev"}, nil)
			users.EXPECT().FindUser(gomock.Any(), int64(7)).Return(&models.User{ID: 7, Username: "john"}, nil)
			employees.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e *models.Employee) (int64, error) {
					assert.Equal(t, tt.want, e.Salary)
					return 5, nil
				},
			)
			employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(employeeFixture(), nil)

			payload := `{"name": "John", "hired": "2020-01-01", "experience": 3, "salary": ` + tt.salary +
				`, "job": "/api/employee_jobs/2", "owner": 7}`
			_, err := svc.CreateEmployee(context.Background(), mustPayload(t, payload))

			require.NoError(t, err)
		})
	}
}

func TestEmployeeService_CreateEmployee_ValidationFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestEmployeeSvc(t, ctrl)

	// no repository call is expected: the employee never reaches storage
	_, err := svc.CreateEmployee(context.Background(), mustPayload(t, `{"name": "J"}`))

	require.ErrorIs(t, err, validators.ErrConstraintViolation)

	var violations validators.ViolationList
	require.ErrorAs(t, err, &violations)
	assert.Contains(t, violations, validators.Violation{
		PropertyPath: "name",
		Message:      "This value is too short. It should have 2 characters or more.",
	})
}

func TestEmployeeService_CreateEmployee_NestedDocument(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestEmployeeSvc(t, ctrl)

	_, err := svc.CreateEmployee(context.Background(), mustPayload(t, `{"job": {"title": "dev"}}`))

	require.ErrorIs(t, err, serializer.ErrInvalidPayload)
	assert.EqualError(t, err, `Nested documents for attribute "job" are not allowed. Use IRIs instead.`)
}

func TestEmployeeService_CreateEmployee_UnknownJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, jobs, _ := newTestEmployeeSvc(t, ctrl)

	jobs.EXPECT().FindEmployeeJob(gomock.Any(), int64(9)).Return(nil, store.ErrEmployeeJobNotFound)

	_, err := svc.CreateEmployee(context.Background(), mustPayload(t, `{"job": "/api/employee_jobs/9"}`))

	require.ErrorIs(t, err, serializer.ErrInvalidPayload)
	assert.EqualError(t, err, `Item not found for "/api/employee_jobs/9".`)
}

func TestEmployeeService_CreateEmployee_ResolverStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, users := newTestEmployeeSvc(t, ctrl)

	users.EXPECT().FindUser(gomock.Any(), int64(7)).Return(nil, errStorage)

	_, err := svc.CreateEmployee(context.Background(), mustPayload(t, `{"owner": "/api/users/7"}`))

	require.ErrorIs(t, err, errStorage)
}

func TestEmployeeService_CreateEmployee_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, jobs, users := newTestEmployeeSvc(t, ctrl)

	jobs.EXPECT().FindEmployeeJob(gomock.Any(), int64(2)).Return(&models.EmployeeJob{ID: 2}, nil)
	users.EXPECT().FindUser(gomock.Any(), int64(7)).Return(&models.User{ID: 7}, nil)
	employees.EXPECT().CreateEmployee(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrRelationConstraint)

	_, err := svc.CreateEmployee(context.Background(), mustPayload(t, validEmployeePayload))

	require.ErrorIs(t, err, store.ErrRelationConstraint)
}

// ── UpdateEmployee ───────────────────────────────────────────────────────────

func TestEmployeeService_UpdateEmployee_MergesPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)
	stored := employeeFixture()
	reloaded := employeeFixture()

	gomock.InOrder(
		employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(stored, nil),
		employees.EXPECT().UpdateEmployee(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *models.Employee) error {
				assert.Equal(t, "Jane", e.Name)
				assert.Equal(t, "2500.50", e.Salary)
				// untouched attributes keep their stored values
				assert.Equal(t, int64(2), e.JobID())
				assert.Equal(t, int64(7), e.OwnerID())
				return nil
			},
		),
		employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(reloaded, nil),
	)

	got, err := svc.UpdateEmployee(context.Background(), 5, mustPayload(t, `{"name": "Jane", "salary": 2500.50, "id": 99}`))

	require.NoError(t, err)
	assert.Same(t, reloaded, got)
}

func TestEmployeeService_UpdateEmployee_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)

	employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(nil, store.ErrEmployeeNotFound)

	_, err := svc.UpdateEmployee(context.Background(), 5, mustPayload(t, `{"name": "Jane"}`))

	require.ErrorIs(t, err, store.ErrEmployeeNotFound)
}

func TestEmployeeService_UpdateEmployee_NameTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)

	employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(employeeFixture(), nil)

	_, err := svc.UpdateEmployee(context.Background(), 5,
		mustPayload(t, `{"name": "abcdefghijklmnopqrstuvwxyzabcde"}`))

	var violations validators.ViolationList
	require.ErrorAs(t, err, &violations)
	assert.Equal(t, validators.NewViolation("name", "Employee name should be less than 30 chars."), violations)
}

func TestEmployeeService_UpdateEmployee_WrongType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, employees, _, _ := newTestEmployeeSvc(t, ctrl)

	employees.EXPECT().FindEmployee(gomock.Any(), int64(5)).Return(employeeFixture(), nil)

	_, err := svc.UpdateEmployee(context.Background(), 5, mustPayload(t, `{"experience": "three"}`))

	require.ErrorIs(t, err, serializer.ErrInvalidPayload)
	assert.EqualError(t, err, `The type of the "experience" attribute must be "int", "string" given.`)
}
