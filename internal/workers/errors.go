// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	ErrPoolStopped  = errors.New("worker pool is stopped")
	ErrTaskPanicked = errors.New("worker task panicked")
)
