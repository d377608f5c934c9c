// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the staff API.
//
// A command is a resource and an action (e.g. "employees list") followed by
// its own flags. Commands talk to the server through [adapter.StaffAPI] and
// print tab-aligned tables or the raw JSON-LD document.
package client
