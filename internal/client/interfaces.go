// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command in args and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}

// Prompter collects interactive input. Implementations must not echo
// secrets.
type Prompter interface {
	// PromptSecret asks for a single hidden value.
	PromptSecret(ctx context.Context, title string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(ctx context.Context, question string) (bool, error)
}
