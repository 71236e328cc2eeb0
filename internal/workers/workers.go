// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Pool is a fixed-size Runner backed by a weighted semaphore.
type Pool struct {
	sem  *semaphore.Weighted
	size int
}

// NewPool creates a Pool that allows size concurrent jobs.
// A non-positive size falls back to runtime.GOMAXPROCS(0).
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}

	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Size reports the number of concurrent slots.
func (p *Pool) Size() int {
	return p.size
}

// Do blocks until a slot is free, then runs fn on the calling goroutine.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)

	return fn()
}
