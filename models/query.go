// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// OrderDirection is the SQL sort direction of an [OrderBy] term.
type OrderDirection string

const (
	OrderAsc  OrderDirection = "ASC"
	OrderDesc OrderDirection = "DESC"
)

// MaxPage is the highest page number a collection request may ask for.
const MaxPage = math.MaxInt32

// Pagination selects a 1-based page of ItemsPerPage items.
type Pagination struct {
	Page         int
	ItemsPerPage int
}

// Offset returns the number of rows to skip for the page.
func (p Pagination) Offset() uint64 {
	if p.Page < 1 || p.ItemsPerPage < 1 {
		return 0
	}
	skipped := uint64(p.Page - 1)
	if skipped > math.MaxInt64/uint64(p.ItemsPerPage) {
		return math.MaxInt64
	}
	return skipped * uint64(p.ItemsPerPage)
}

// Limit returns the number of rows to fetch for the page.
func (p Pagination) Limit() uint64 {
	if p.ItemsPerPage < 1 {
		return 0
	}
	return uint64(p.ItemsPerPage)
}

// OrderBy is one sort term. Field is a column name.
type OrderBy struct {
	Field     string
	Direction OrderDirection
}

// EmployeeFilter narrows the employee collection.
// Empty JobIDs means no job filter; Order terms are applied in order.
type EmployeeFilter struct {
	JobIDs []int64
	Order  []OrderBy
	Pagination
}

// UserFilter narrows the user collection with exact matches.
// Values of one attribute are OR-ed, attributes are AND-ed.
type UserFilter struct {
	Usernames          []string
	UsernameCanonicals []string
	Emails             []string
	Pagination
}

// Page is one page of a collection together with its total size.
type Page[T any] struct {
	Items      []T
	TotalItems int
	Pagination
}

// LastPage returns the number of the last page, at least 1.
func (p Page[T]) LastPage() int {
	if p.ItemsPerPage < 1 || p.TotalItems == 0 {
		return 1
	}
	return (p.TotalItems + p.ItemsPerPage - 1) / p.ItemsPerPage
}
