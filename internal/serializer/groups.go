// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serializer

import "slices"

// Group is a normalization or denormalization group name.
type Group string

const (
	GroupEmployeeRead    Group = "employee:read"
	GroupEmployeeItemGet Group = "employee:item:get"
	GroupEmployeeWrite   Group = "employee:write"
	GroupUserRead        Group = "user:read"
	GroupUserWrite       Group = "user:write"
)

// attribute is one serialized property of a resource.
type attribute struct {
	name   string
	groups []Group
}

// in reports whether the attribute belongs to any of groups.
// No groups selects every attribute.
func (a attribute) in(groups []Group) bool {
	if len(groups) == 0 {
		return true
	}

	for _, g := range groups {
		if slices.Contains(a.groups, g) {
			return true
		}
	}
	return false
}

// writable reports whether the attribute is accepted on input for groups.
// Identifiers are never written.
func (a attribute) writable(groups []Group) bool {
	return a.name != "id" && a.in(groups)
}

// exposes reports whether a related resource with attrs is embedded rather
// than referenced by IRI under groups.
func exposes(attrs []attribute, groups []Group) bool {
	if len(groups) == 0 {
		return false
	}

	for _, a := range attrs {
		if a.in(groups) {
			return true
		}
	}
	return false
}

var employeeAttributes = []attribute{
	{name: "id", groups: []Group{GroupEmployeeRead}},
	{name: "name", groups: []Group{GroupEmployeeRead, GroupEmployeeWrite, GroupUserRead}},
	{name: "hired", groups: []Group{GroupEmployeeRead, GroupEmployeeWrite}},
	{name: "experience", groups: []Group{GroupEmployeeRead, GroupEmployeeWrite}},
	{name: "salary", groups: []Group{GroupEmployeeRead, GroupEmployeeWrite}},
	{name: "firedDate", groups: []Group{GroupEmployeeRead, GroupEmployeeWrite}},
	{name: "job", groups: []Group{GroupEmployeeRead, GroupEmployeeWrite}},
	{name: "owner", groups: []Group{GroupEmployeeRead, GroupEmployeeWrite, GroupUserRead}},
}

// userAttributes keeps username ahead of username_canonical: on input an
// explicit canonical value must win over the mirrored one.
var userAttributes = []attribute{
	{name: "id", groups: []Group{GroupUserRead}},
	{name: "username", groups: []Group{GroupUserRead, GroupUserWrite, GroupEmployeeItemGet, GroupEmployeeWrite}},
	{name: "username_canonical", groups: []Group{GroupUserRead, GroupUserWrite}},
	{name: "email", groups: []Group{GroupUserRead, GroupUserWrite}},
	{name: "enabled", groups: []Group{GroupUserRead, GroupUserWrite}},
	{name: "password", groups: []Group{GroupUserRead, GroupUserWrite}},
	{name: "confirmation_token", groups: []Group{GroupUserRead, GroupUserWrite}},
	{name: "registration_date", groups: []Group{GroupUserRead, GroupUserWrite}},
	{name: "salt", groups: []Group{GroupUserRead, GroupUserWrite}},
	{name: "roles", groups: []Group{GroupUserRead, GroupUserWrite}},
	{name: "last_login", groups: []Group{GroupUserRead, GroupUserWrite}},
	{name: "employees", groups: []Group{GroupUserRead}},
}

var employeeJobAttributes = []attribute{
	{name: "id"},
	{name: "title"},
}
