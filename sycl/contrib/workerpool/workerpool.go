// Copyright 2025 The go-sycl Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for the
// parallel-outer execution mode of package sycl. A Pool is created once and
// shared by many launches, so a launch pays neither goroutine spawning nor
// channel allocation.
//
// Every loop takes a body that may fail. The first error stops the hand-out
// of further work and is returned once all running bodies have finished.
// A panicking body is captured as a *PanicError instead of killing the
// process from a worker goroutine.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	exec := sycl.NewExecutor(&sycl.Options{Mode: sycl.ModeParallelOuter, Pool: pool})
//	for _, step := range steps {
//	    if err := exec.ParallelForND(step.NDRange, step.Kernel); err != nil {
//	        return err
//	    }
//	}
//
// Bodies must not submit work to the pool that runs them: all workers may be
// blocked waiting on the nested loop.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool that can be reused across many parallel
// loops. Workers are spawned once at creation and reused.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one unit handed to a worker. Its result goes to the loop's
// collector; barrier is released when it returns.
type task struct {
	fn      func() error
	errs    *collector
	barrier *sync.WaitGroup
}

// New creates a new worker pool with the specified number of workers.
// Workers are spawned immediately and persist until Close is called.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for t := range p.workC {
		t.errs.record(CatchPanic(t.fn))
		t.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the worker pool. Pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor runs fn over [0, n) split into one contiguous range per
// worker. Blocks until all work completes and returns the first error.
//
// fn receives (start, end) and should process [start, end). fn is called
// once per worker, so stopping early after another worker failed is up to
// fn.
func (p *Pool) ParallelFor(n int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		return CatchPanic(func() error { return fn(0, n) })
	}

	chunkSize := (n + workers - 1) / workers
	errs := &collector{}
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		p.workC <- task{
			fn:      func() error { return fn(start, end) },
			errs:    errs,
			barrier: &wg,
		}
	}
	wg.Wait()
	return errs.first()
}

// ParallelForAtomic runs fn for each index in [0, n), with workers grabbing
// the next index from a shared atomic counter. This balances load when work
// per index varies. No index is started after a failure.
func (p *Pool) ParallelForAtomic(n int, fn func(i int) error) error {
	return p.ParallelForAtomicBatched(n, 1, func(start, end int) error {
		for i := start; i < end; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	})
}

// ParallelForAtomicBatched is ParallelForAtomic handing out batchSize
// consecutive indices per atomic grab. fn receives (start, end).
func (p *Pool) ParallelForAtomicBatched(n int, batchSize int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	workers := min(p.numWorkers, numBatches)
	if p.closed.Load() || workers == 1 {
		return CatchPanic(func() error {
			for start := 0; start < n; start += batchSize {
				if err := fn(start, min(start+batchSize, n)); err != nil {
					return err
				}
			}
			return nil
		})
	}

	errs := &collector{}
	var nextBatch atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func() error {
				for !errs.failed.Load() {
					batch := int(nextBatch.Add(1)) - 1
					start := batch * batchSize
					if start >= n {
						return nil
					}
					if err := fn(start, min(start+batchSize, n)); err != nil {
						errs.record(err)
						return err
					}
				}
				return nil
			},
			errs:    errs,
			barrier: &wg,
		}
	}
	wg.Wait()
	return errs.first()
}

// collector keeps the first error reported by the tasks of one loop.
type collector struct {
	failed atomic.Bool
	once   sync.Once
	err    error
}

func (c *collector) record(err error) {
	if err == nil {
		return
	}
	c.once.Do(func() {
		c.err = err
		c.failed.Store(true)
	})
}

// first is only called after every task has returned.
func (c *collector) first() error {
	return c.err
}
