// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs independent units of work with bounded parallelism.
//
// A [Pool] never lets one failing job stop the others: every job reports its
// own outcome, and the caller decides what a failure means.
package workers

import "context"

// Job is one unit of work. index is the job's position in the batch.
type Job func(ctx context.Context, index int) error

// Runner executes a batch of n jobs.
//
// The returned slice has length n; element i is the error of job i, nil on
// success, or ctx.Err() if the job was never started because ctx was done.
type Runner interface {
	Run(ctx context.Context, n int, job Job) []error
}
