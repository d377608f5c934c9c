// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EmployeeJob is the position an [Employee] is hired for.
// Employees reference it by IRI (/api/employee_jobs/{id}) or numeric id.
type EmployeeJob struct {
	ID    int64  `json:"id"`
	Title string `json:"title" validate:"required,max=50"`
}

// TableName returns the name of the database table
// associated with the EmployeeJob model.
func (j EmployeeJob) TableName() string {
	return "employee_job"
}
