// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the relay's transport server.
type Server interface {
	// RunServer serves requests until ctx is done or SIGINT/SIGTERM/SIGQUIT
	// arrives, then shuts down gracefully. It returns an error only when the
	// listener cannot be started or fails.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx is done.
	Shutdown(ctx context.Context) error
}
