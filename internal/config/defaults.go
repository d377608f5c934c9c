// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the configuration used for every field no other source
// sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-staff-api",
			TokenDuration:    time.Hour,
			PasswordHashCost: 10,
			EmployeesPerPage: 2,
			ItemsPerPage:     30,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "file:staff.db",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 10 * time.Second,
		},
	}
}
