// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"fmt"
	"strconv"
	"strings"
)

// Resource describes how one resource type is addressed.
type Resource struct {
	// Type is the JSON-LD @type.
	Type string
	// Path is the collection IRI; items live at Path/{id}.
	Path string
}

var (
	EmployeeResource    = Resource{Type: "Employee", Path: "/api/employees"}
	EmployeeJobResource = Resource{Type: "EmployeeJob", Path: "/api/employee_jobs"}
	UserResource        = Resource{Type: "User", Path: "/api/users"}
)

// IRI returns the item IRI for id.
func (r Resource) IRI(id int64) string {
	return r.Path + "/" + strconv.FormatInt(id, 10)
}

// ParseIRI extracts the id from an item IRI of r.
func (r Resource) ParseIRI(iri string) (int64, error) {
	rest, ok := strings.CutPrefix(iri, r.Path+"/")
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a %s IRI", ErrInvalidIRI, iri, r.Type)
	}

	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIRI, iri)
	}

	return id, nil
}
