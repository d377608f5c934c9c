// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the staff API HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown on SIGTERM, SIGINT or SIGQUIT.
package server
