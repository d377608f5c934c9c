// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// decimalTag is the rule for SQL decimal(precision,scale) values kept as
// strings. Usage: `validate:"decimal=7:2"`.
const decimalTag = "decimal"

func validateDecimal(fl validator.FieldLevel) bool {
	precision, scale, err := parseDecimalParam(fl.Param())
	if err != nil {
		return false
	}

	return IsDecimal(fl.Field().String(), precision, scale)
}

// IsDecimal reports whether s is a plain decimal literal fitting
// decimal(precision, scale).
func IsDecimal(s string, precision, scale int) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}

	intPart, fracPart, hasPoint := strings.Cut(s, ".")
	if intPart == "" || (hasPoint && fracPart == "") {
		return false
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return false
	}

	intPart = strings.TrimLeft(intPart, "0")
	return len(fracPart) <= scale && len(intPart) <= precision-scale
}

// FormatDecimal rewrites a literal accepted by [IsDecimal] with exactly
// scale fraction digits and no leading zeros, as a decimal column returns
// it: "1500" becomes "1500.00", "007.5" becomes "7.50". Other input is
// returned unchanged.
func FormatDecimal(s string, scale int) string {
	sign, digits := "", s
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, digits = "-", rest
	}

	intPart, fracPart, _ := strings.Cut(digits, ".")
	if intPart == "" || !allDigits(intPart) || !allDigits(fracPart) || len(fracPart) > scale {
		return s
	}

	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	if scale == 0 {
		return sign + intPart
	}

	return sign + intPart + "." + fracPart + strings.Repeat("0", scale-len(fracPart))
}

func parseDecimalParam(param string) (int, int, error) {
	p, s, ok := strings.Cut(param, ":")
	if !ok {
		return 0, 0, fmt.Errorf("decimal param %q: want precision:scale", param)
	}

	precision, err := strconv.Atoi(p)
	if err != nil {
		return 0, 0, fmt.Errorf("decimal precision: %w", err)
	}
	scale, err := strconv.Atoi(s)
	if err != nil {
		return 0, 0, fmt.Errorf("decimal scale: %w", err)
	}
	if scale < 0 || precision < 1 || scale > precision {
		return 0, 0, fmt.Errorf("decimal param %q out of range", param)
	}

	return precision, scale, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
