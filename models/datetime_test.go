// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "rfc3339", input: "2020-01-02T03:04:05Z", want: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "rfc3339 with offset", input: "2020-01-02T03:04:05+02:00", want: time.Date(2020, 1, 2, 1, 4, 5, 0, time.UTC)},
		{name: "without zone", input: "2020-01-02T03:04:05", want: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "space separated", input: "2020-01-02 03:04:05", want: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)},
		{name: "date only", input: "2020-01-02", want: time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDateTime))
				return
			}

			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestDateTime_JSON(t *testing.T) {
	var d DateTime
	require.NoError(t, json.Unmarshal([]byte(`"2021-06-01"`), &d))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2021-06-01T00:00:00+00:00"`, string(out))
}

func TestDateTime_UnmarshalJSON_NotAString(t *testing.T) {
	var d DateTime
	assert.Error(t, json.Unmarshal([]byte(`12345`), &d))
}
