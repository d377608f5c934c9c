// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import (
	"github.com/MKhiriev/go-staff-api/models"
)

// Document is a JSON-LD object ready for encoding.
type Document map[string]any

// Normalizer renders resources under a fixed set of groups.
// A Normalizer is not safe for concurrent use; create one per response.
type Normalizer struct {
	groups []Group

	// rendering holds the IRIs of the objects on the current path, so a
	// relation back to one of them is rendered as an IRI.
	rendering map[string]struct{}
}

// NewNormalizer returns a Normalizer for groups. No groups renders every
// attribute and every relation as an IRI.
func NewNormalizer(groups ...Group) *Normalizer {
	return &Normalizer{
		groups:    groups,
		rendering: make(map[string]struct{}),
	}
}

// Employee renders e.
func (n *Normalizer) Employee(e *models.Employee) Document {
	iri := EmployeeResource.IRI(e.ID)
	doc := Document{"@id": iri, "@type": EmployeeResource.Type}

	n.enter(iri)
	defer n.leave(iri)

	for _, attr := range employeeAttributes {
		if !attr.in(n.groups) {
			continue
		}

		switch attr.name {
		case "id":
			doc[attr.name] = e.ID
		case "name":
			doc[attr.name] = e.Name
		case "hired":
			doc[attr.name] = dateTimeValue(e.Hired)
		case "experience":
			if e.Experience == nil {
				doc[attr.name] = nil
			} else {
				doc[attr.name] = *e.Experience
			}
		case "salary":
			doc[attr.name] = e.Salary
		case "firedDate":
			doc[attr.name] = dateTimeValue(e.FiredDate)
		case "job":
			doc[attr.name] = n.employeeJobRelation(e.Job)
		case "owner":
			doc[attr.name] = n.userRelation(e.Owner)
		}
	}

	return doc
}

// EmployeeJob renders j.
func (n *Normalizer) EmployeeJob(j *models.EmployeeJob) Document {
	doc := Document{"@id": EmployeeJobResource.IRI(j.ID), "@type": EmployeeJobResource.Type}

	for _, attr := range employeeJobAttributes {
		if !attr.in(n.groups) {
			continue
		}

		switch attr.name {
		case "id":
			doc[attr.name] = j.ID
		case "title":
			doc[attr.name] = j.Title
		}
	}

	return doc
}

// User renders u.
func (n *Normalizer) User(u *models.User) Document {
	iri := UserResource.IRI(u.ID)
	doc := Document{"@id": iri, "@type": UserResource.Type}

	n.enter(iri)
	defer n.leave(iri)

	for _, attr := range userAttributes {
		if !attr.in(n.groups) {
			continue
		}

		switch attr.name {
		case "id":
			doc[attr.name] = u.ID
		case "username":
			doc[attr.name] = u.Username
		case "username_canonical":
			doc[attr.name] = u.UsernameCanonical
		case "email":
			doc[attr.name] = u.Email
		case "enabled":
			doc[attr.name] = u.IsEnabled()
		case "password":
			doc[attr.name] = u.Password
		case "confirmation_token":
			doc[attr.name] = u.ConfirmationToken
		case "registration_date":
			doc[attr.name] = u.RegistrationDate.String()
		case "salt":
			if u.Salt == nil {
				doc[attr.name] = nil
			} else {
				doc[attr.name] = *u.Salt
			}
		case "roles":
			if u.Roles == nil {
				doc[attr.name] = nil
			} else {
				doc[attr.name] = u.Roles
			}
		case "last_login":
			doc[attr.name] = dateTimeValue(u.LastLogin)
		case "employees":
			employees := make([]any, 0, len(u.Employees))
			for _, e := range u.Employees {
				employees = append(employees, n.employeeRelation(e))
			}
			doc[attr.name] = employees
		}
	}

	return doc
}

func (n *Normalizer) employeeRelation(e *models.Employee) any {
	if e == nil {
		return nil
	}

	iri := EmployeeResource.IRI(e.ID)
	if n.isRendering(iri) || !exposes(employeeAttributes, n.groups) {
		return iri
	}
	return n.Employee(e)
}

func (n *Normalizer) employeeJobRelation(j *models.EmployeeJob) any {
	if j == nil {
		return nil
	}

	if !exposes(employeeJobAttributes, n.groups) {
		return EmployeeJobResource.IRI(j.ID)
	}
	return n.EmployeeJob(j)
}

func (n *Normalizer) userRelation(u *models.User) any {
	if u == nil {
		return nil
	}

	iri := UserResource.IRI(u.ID)
	if n.isRendering(iri) || !exposes(userAttributes, n.groups) {
		return iri
	}
	return n.User(u)
}

func (n *Normalizer) enter(iri string) {
	n.rendering[iri] = struct{}{}
}

func (n *Normalizer) leave(iri string) {
	delete(n.rendering, iri)
}

func (n *Normalizer) isRendering(iri string) bool {
	_, ok := n.rendering[iri]
	return ok
}

func dateTimeValue(d *models.DateTime) any {
	if d == nil {
		return nil
	}
	return d.String()
}
