// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-staff-api/models"
)

var (
	employeeColumns = []string{
		"e.id", "e.name", "e.hired", "e.experience", "e.salary", "e.fired_date",
		"j.id", "j.title",
		"u.id", "u.username",
	}

	employeeJobColumns = []string{"id", "title"}

	userColumns = []string{
		"id", "username", "username_canonical", "email", "enabled", "password",
		"confirmation_token", "registration_date", "salt", "roles", "last_login",
	}

	// employeeOrderColumns lists the sortable employee properties.
	employeeOrderColumns = map[string]string{
		"id":   "e.id",
		"name": "e.name",
	}
)

func buildSelectEmployeesQuery(b sq.StatementBuilderType, filter models.EmployeeFilter) (string, []any, error) {
	q := b.Select(employeeColumns...).
		From("employee e").
		LeftJoin("employee_job j ON j.id = e.job_id").
		Join("users u ON u.id = e.owner_id")

	if len(filter.JobIDs) > 0 {
		q = q.Where(sq.Eq{"e.job_id": filter.JobIDs})
	}

	q = q.OrderBy(employeeOrderClauses(filter.Order)...)
	q = paginate(q, filter.Pagination)

	return q.ToSql()
}

// employeeOrderClauses renders the known order terms and appends id ASC
// unless the id is already ordered on, so pages are stable.
func employeeOrderClauses(order []models.OrderBy) []string {
	clauses := make([]string, 0, len(order)+1)
	orderedByID := false

	for _, o := range order {
		column, ok := employeeOrderColumns[o.Field]
		if !ok {
			continue
		}
		if o.Direction != models.OrderAsc && o.Direction != models.OrderDesc {
			continue
		}

		clauses = append(clauses, column+" "+string(o.Direction))
		if o.Field == "id" {
			orderedByID = true
		}
	}

	if !orderedByID {
		clauses = append(clauses, "e.id ASC")
	}

	return clauses
}

func buildCountEmployeesQuery(b sq.StatementBuilderType, filter models.EmployeeFilter) (string, []any, error) {
	q := b.Select("COUNT(*)").From("employee e")

	if len(filter.JobIDs) > 0 {
		q = q.Where(sq.Eq{"e.job_id": filter.JobIDs})
	}

	return q.ToSql()
}

func buildSelectEmployeesWhereQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(employeeColumns...).
		From("employee e").
		LeftJoin("employee_job j ON j.id = e.job_id").
		Join("users u ON u.id = e.owner_id").
		Where(where).
		OrderBy("e.id ASC").
		ToSql()
}

func buildInsertEmployeeQuery(b sq.StatementBuilderType, e *models.Employee) (string, []any, error) {
	return b.Insert("employee").
		Columns("job_id", "owner_id", "name", "hired", "experience", "salary", "fired_date").
		Values(nullID(e.JobID()), e.OwnerID(), e.Name, nullTime(e.Hired), derefInt(e.Experience), e.Salary, nullTime(e.FiredDate)).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateEmployeeQuery(b sq.StatementBuilderType, e *models.Employee) (string, []any, error) {
	return b.Update("employee").
		SetMap(map[string]any{
			"job_id":     nullID(e.JobID()),
			"owner_id":   e.OwnerID(),
			"name":       e.Name,
			"hired":      nullTime(e.Hired),
			"experience": derefInt(e.Experience),
			"salary":     e.Salary,
			"fired_date": nullTime(e.FiredDate),
		}).
		Where(sq.Eq{"id": e.ID}).
		ToSql()
}

func buildSelectEmployeeJobsQuery(b sq.StatementBuilderType, pagination models.Pagination) (string, []any, error) {
	q := b.Select(employeeJobColumns...).From("employee_job").OrderBy("id ASC")
	return paginate(q, pagination).ToSql()
}

func buildInsertEmployeeJobQuery(b sq.StatementBuilderType, j *models.EmployeeJob) (string, []any, error) {
	return b.Insert("employee_job").
		Columns("title").
		Values(j.Title).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType, filter models.UserFilter) (string, []any, error) {
	q := b.Select(userColumns...).From("users")
	if conditions := userFilterConditions(filter); len(conditions) > 0 {
		q = q.Where(conditions)
	}
	return paginate(q.OrderBy("id ASC"), filter.Pagination).ToSql()
}

func buildCountUsersQuery(b sq.StatementBuilderType, filter models.UserFilter) (string, []any, error) {
	q := b.Select("COUNT(*)").From("users")
	if conditions := userFilterConditions(filter); len(conditions) > 0 {
		q = q.Where(conditions)
	}
	return q.ToSql()
}

// userFilterConditions ANDs one IN condition per filtered attribute.
func userFilterConditions(filter models.UserFilter) sq.And {
	conditions := sq.And{}
	if len(filter.Usernames) > 0 {
		conditions = append(conditions, sq.Eq{"username": filter.Usernames})
	}
	if len(filter.UsernameCanonicals) > 0 {
		conditions = append(conditions, sq.Eq{"username_canonical": filter.UsernameCanonicals})
	}
	if len(filter.Emails) > 0 {
		conditions = append(conditions, sq.Eq{"email": filter.Emails})
	}
	return conditions
}

func buildInsertUserQuery(b sq.StatementBuilderType, u *models.User) (string, []any, error) {
	roles, err := encodeRoles(u.Roles)
	if err != nil {
		return "", nil, err
	}

	return b.Insert("users").
		Columns(userColumns[1:]...).
		Values(u.Username, u.UsernameCanonical, u.Email, u.IsEnabled(), u.Password,
			u.ConfirmationToken, u.RegistrationDate.UTC(), u.Salt, roles, nullTime(u.LastLogin)).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, u *models.User) (string, []any, error) {
	roles, err := encodeRoles(u.Roles)
	if err != nil {
		return "", nil, err
	}

	return b.Update("users").
		SetMap(map[string]any{
			"username":           u.Username,
			"username_canonical": u.UsernameCanonical,
			"email":              u.Email,
			"enabled":            u.IsEnabled(),
			"password":           u.Password,
			"confirmation_token": u.ConfirmationToken,
			"registration_date":  u.RegistrationDate.UTC(),
			"salt":               u.Salt,
			"roles":              roles,
			"last_login":         nullTime(u.LastLogin),
		}).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
}

func paginate(q sq.SelectBuilder, p models.Pagination) sq.SelectBuilder {
	if limit := p.Limit(); limit > 0 {
		q = q.Limit(limit).Offset(p.Offset())
	}
	return q
}
