// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool is a [Runner] with a fixed upper bound on concurrently running jobs.
type Pool struct {
	size int
}

// NewPool returns a pool running at most size jobs at once. A non-positive
// size means runtime.NumCPU().
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{size: size}
}

// Size returns the concurrency limit.
func (p *Pool) Size() int {
	return p.size
}

// Run implements [Runner]. Jobs are started in index order. Once ctx is done
// no further jobs start; jobs already running are left to finish and see the
// same ctx.
func (p *Pool) Run(ctx context.Context, n int, job Job) []error {
	errs := make([]error, n)
	sem := semaphore.NewWeighted(int64(p.size))

	var g errgroup.Group
	for i := 0; i < n; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			errs[i] = err
			continue
		}
		// Acquire may succeed on a done context when a slot is free.
		if err := ctx.Err(); err != nil {
			sem.Release(1)
			errs[i] = err
			continue
		}

		g.Go(func() error {
			defer sem.Release(1)
			errs[i] = job(ctx, i)
			return nil
		})
	}

	_ = g.Wait()
	return errs
}
