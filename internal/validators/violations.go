// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "strings"

// Violation is one failed constraint.
type Violation struct {
	PropertyPath string `json:"propertyPath"`
	Message      string `json:"message"`
}

// ViolationList is returned by [Validator.Validate] when at least one
// constraint fails. It matches [ErrConstraintViolation] with errors.Is.
type ViolationList []Violation

// NewViolation returns a list holding a single violation.
func NewViolation(propertyPath, message string) ViolationList {
	return ViolationList{{PropertyPath: propertyPath, Message: message}}
}

// Error renders the list as "path: message" lines.
func (l ViolationList) Error() string {
	parts := make([]string, 0, len(l))
	for _, v := range l {
		if v.PropertyPath == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.PropertyPath+": "+v.Message)
	}
	return strings.Join(parts, "\n")
}

// Is makes the list match [ErrConstraintViolation].
func (l ViolationList) Is(target error) bool {
	return target == ErrConstraintViolation
}
