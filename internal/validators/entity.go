// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-staff-api/models"
	"github.com/go-playground/validator/v10"
)

// EntityValidator implements [Validator] for the API resources:
// models.Employee, models.EmployeeJob and models.User, by value or pointer.
//
// Relations are checked for presence only; the related entity is never
// validated through its parent.
type EntityValidator struct {
	validate *validator.Validate
}

// NewEntityValidator constructs an [EntityValidator] with the decimal rule
// registered and JSON attribute names used as property paths.
func NewEntityValidator() Validator {
	v := validator.New()

	v.RegisterTagNameFunc(jsonAttributeName)

	// relations and datetimes are leaves for validation purposes
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(models.DateTime).Time
	}, models.DateTime{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(models.EmployeeJob).ID
	}, models.EmployeeJob{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		return field.Interface().(models.User).ID
	}, models.User{})

	// registration of a static rule with a valid name never fails
	_ = v.RegisterValidation(decimalTag, validateDecimal)

	return &EntityValidator{validate: v}
}

// Validate checks obj against its tag constraints.
//
// Returns nil, a [ViolationList] collecting every failed constraint, or
// [ErrUnsupportedType] for anything other than a supported entity.
func (v *EntityValidator) Validate(ctx context.Context, obj any) error {
	switch obj.(type) {
	case models.Employee, *models.Employee,
		models.EmployeeJob, *models.EmployeeJob,
		models.User, *models.User:
	default:
		return ErrUnsupportedType
	}

	typ := reflect.TypeOf(obj)
	if typ.Kind() == reflect.Ptr {
		if reflect.ValueOf(obj).IsNil() {
			return ErrUnsupportedType
		}
		typ = typ.Elem()
	}

	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	return toViolationList(typ, validationErrors)
}

func toViolationList(typ reflect.Type, validationErrors validator.ValidationErrors) ViolationList {
	list := make(ViolationList, 0, len(validationErrors))
	for _, fe := range validationErrors {
		field, found := typ.FieldByName(fe.StructField())
		list = append(list, Violation{
			PropertyPath: fe.Field(),
			Message:      messageFor(fe, field, found),
		})
	}
	return list
}

func jsonAttributeName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}
