// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "errors"

// ErrPromptCancelled is returned when the user leaves a prompt with Esc or
// Ctrl+C.
var ErrPromptCancelled = errors.New("prompt cancelled")
