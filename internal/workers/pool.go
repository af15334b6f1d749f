// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"runtime"
	"sync"
)

type task struct {
	fn   func()
	done chan error
}

// Pool runs submitted functions on a fixed number of goroutines.
//
// Do blocks the caller until the function finished or ctx is done. A
// cancelled ctx only abandons the wait: a function already picked up by a
// worker always runs to completion, so it must clean up after itself.
type Pool struct {
	size  int
	tasks chan task
	quit  chan struct{}

	startOnce sync.Once
	stopOnce  sync.Once
	wg        sync.WaitGroup
}

// NewPool creates a pool of size goroutines. size <= 0 means runtime.NumCPU().
// The goroutines start on the first Run or Do.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}

	return &Pool{
		size:  size,
		tasks: make(chan task),
		quit:  make(chan struct{}),
	}
}

// Size returns the number of worker goroutines.
func (p *Pool) Size() int {
	return p.size
}

// Run starts the worker goroutines and returns. Calling it again is a no-op.
func (p *Pool) Run() {
	p.startOnce.Do(func() {
		p.wg.Add(p.size)
		for range p.size {
			go p.loop()
		}
	})
}

// Stop signals the workers to exit and waits for in-flight tasks.
// Do calls made after Stop fail with ErrPoolStopped.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.quit)
	})
	p.wg.Wait()
}

// Do runs fn on a pool goroutine and waits for it. fn is never started
// when ctx is already done.
func (p *Pool) Do(ctx context.Context, fn func()) error {
	select {
	case <-p.quit:
		return ErrPoolStopped
	default:
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	p.Run()

	t := task{fn: fn, done: make(chan error, 1)}

	select {
	case p.tasks <- t:
	case <-ctx.Done():
		return ctx.Err()
	case <-p.quit:
		return ErrPoolStopped
	}

	select {
	case err := <-t.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) loop() {
	defer p.wg.Done()

	for {
		select {
		case t := <-p.tasks:
			t.done <- runTask(t.fn)
		case <-p.quit:
			return
		}
	}
}

func runTask(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrTaskPanicked, r)
		}
	}()

	fn()
	return nil
}
