// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable command line application.
type Client interface {
	// Run resolves the configured declaration, or looks up the remote
	// snapshot, and writes the result.
	Run(ctx context.Context) error
}
