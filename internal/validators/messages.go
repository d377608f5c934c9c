// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// messageTagSuffix names the struct tag that overrides the message of one
// constraint, e.g. `maxMessage:"..."` for the max rule.
const messageTagSuffix = "Message"

const (
	msgNotBlank = "This value should not be blank."
	msgTooShort = "This value is too short. It should have %s or more."
	msgTooLong  = "This value is too long. It should have %s or less."
	msgDecimal  = "This value should be a decimal number with at most %d digits, %d of them after the point."
	msgInvalid  = "This value is not valid."
)

// messageFor renders the message of a failed constraint on field.
func messageFor(fe validator.FieldError, field reflect.StructField, found bool) string {
	if found {
		if custom := field.Tag.Get(fe.Tag() + messageTagSuffix); custom != "" {
			return custom
		}
	}

	switch fe.Tag() {
	case "required":
		return msgNotBlank
	case "min":
		return fmt.Sprintf(msgTooShort, characters(fe.Param()))
	case "max":
		return fmt.Sprintf(msgTooLong, characters(fe.Param()))
	case decimalTag:
		precision, scale, err := parseDecimalParam(fe.Param())
		if err != nil {
			return msgInvalid
		}
		return fmt.Sprintf(msgDecimal, precision, scale)
	default:
		return msgInvalid
	}
}

func characters(param string) string {
	if n, err := strconv.Atoi(param); err == nil && n == 1 {
		return "1 character"
	}
	return param + " characters"
}
