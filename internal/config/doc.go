// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the server and the API client.
//
// Configuration is assembled from multiple sources. For every field the first
// source that provides a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (CONFIG / -c)
//  4. dotenv file (DOTENV / -dotenv, ".env" when present)
//  5. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
