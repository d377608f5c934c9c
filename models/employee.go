// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Employee is a staff record owned by a [User].
//
// Attributes that are required on write are pointers so that an absent value
// can be told apart from a zero one before validation runs.
type Employee struct {
	ID int64 `json:"id"`

	Name string `json:"name" validate:"required,min=2,max=30" maxMessage:"Employee name should be less than 30 chars."`

	Hired      *DateTime `json:"hired" validate:"required"`
	Experience *int      `json:"experience" validate:"required"`

	// Salary keeps the decimal(7,2) value in its textual form, as stored.
	Salary string `json:"salary" validate:"required,decimal=7:2"`

	FiredDate *DateTime `json:"firedDate"`

	// Job is loaded eagerly with every employee.
	Job *EmployeeJob `json:"job" validate:"required"`

	// Owner is the owning side of the User.Employees relation.
	Owner *User `json:"owner" validate:"required" requiredMessage:"This value should not be null."`
}

// TableName returns the name of the database table
// associated with the Employee model.
func (e Employee) TableName() string {
	return "employee"
}

// OwnedBy reports whether the employee's owner is u.
// Persisted users are compared by id, transient ones by identity.
func (e *Employee) OwnedBy(u *User) bool {
	if e.Owner == nil || u == nil {
		return false
	}

	return sameUser(e.Owner, u)
}

// OwnerID returns the owner's id or 0 when the employee has no owner.
func (e *Employee) OwnerID() int64 {
	if e.Owner == nil {
		return 0
	}
	return e.Owner.ID
}

// JobID returns the job's id or 0 when no job is set.
func (e *Employee) JobID() int64 {
	if e.Job == nil {
		return 0
	}
	return e.Job.ID
}
