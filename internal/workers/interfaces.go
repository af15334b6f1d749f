// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and a bounded Pool that runs
// CPU-heavy tasks (key derivation) off the calling goroutine.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to either block for the duration of their
// work or spawn goroutines internally and return.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() {
//	    // start background processing
//	}
type Worker interface {
	Run()
}

// Stopper is implemented by workers that hold goroutines which must be
// released on shutdown.
type Stopper interface {
	Stop()
}
