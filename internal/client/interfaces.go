// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the contract of a runnable client application.
type Client interface {
	// Run executes the command given by args and returns when it is done.
	Run(ctx context.Context, args []string) error
}
