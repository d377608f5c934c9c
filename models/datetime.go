// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTimeLayout is the RFC 3339 output layout with a numeric zone offset,
// so UTC renders as +00:00.
const DateTimeLayout = "2006-01-02T15:04:05-07:00"

// dateTimeLayouts lists the input formats accepted for datetime attributes,
// tried in order.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DateTime is a time.Time that accepts the usual date/datetime spellings
// when decoded from JSON and always encodes with [DateTimeLayout].
type DateTime struct {
	time.Time
}

// NewDateTime wraps t.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

// ParseDateTime parses s with the first matching layout from dateTimeLayouts.
func ParseDateTime(s string) (DateTime, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateTime{Time: t}, nil
		}
	}

	return DateTime{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// String formats d with [DateTimeLayout].
func (d DateTime) String() string {
	return d.Time.Format(DateTimeLayout)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseDateTime(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
