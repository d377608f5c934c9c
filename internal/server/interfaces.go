// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the transport server.
//
// Implementations block in [RunServer] until shutdown is requested or the
// listener fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A non-nil error means the server could not serve, e.g. the address
	// is already in use.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
