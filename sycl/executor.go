// Copyright 2025 go-sycl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sycl

import (
	"errors"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-sycl/sycl/contrib/workerpool"
)

// Options configures an Executor.
type Options struct {
	// Mode selects sequential or parallel-outer execution.
	Mode Mode

	// Workers bounds the number of goroutines of a parallel-outer launch.
	// If <= 0, uses GOMAXPROCS. Ignored when Pool is set.
	Workers int

	// Schedule selects static chunks or dynamic batches of outer indices.
	Schedule Schedule

	// Batch is the number of outer indices grabbed at once by the dynamic
	// schedule. If <= 0, uses 1.
	Batch int

	// Pool, if set, runs parallel-outer launches on persistent workers.
	// Otherwise every launch fans out to fresh goroutines and joins them
	// before returning.
	Pool *workerpool.Pool
}

// Executor runs launches with a fixed configuration. It holds no per-launch
// state and is safe for concurrent use.
type Executor struct {
	opts Options
}

// NewExecutor returns an executor for opts, or for DefaultOptions if opts
// is nil.
func NewExecutor(opts *Options) *Executor {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Batch <= 0 {
		o.Batch = 1
	}
	return &Executor{opts: o}
}

// Options returns the executor configuration.
func (e *Executor) Options() Options { return e.opts }

// Workers returns the maximum number of goroutines a launch uses.
func (e *Executor) Workers() int {
	switch {
	case e.opts.Mode == ModeSequential:
		return 1
	case e.opts.Pool != nil:
		return e.opts.Pool.NumWorkers()
	default:
		return e.opts.Workers
	}
}

var defaultExecutor atomic.Pointer[Executor]

// Default returns the executor used by the package-level launch functions.
// It is created from DefaultOptions on first use.
func Default() *Executor {
	if e := defaultExecutor.Load(); e != nil {
		return e
	}
	defaultExecutor.CompareAndSwap(nil, NewExecutor(nil))
	return defaultExecutor.Load()
}

// SetDefaultExecutor replaces the executor of the package-level launch
// functions. nil resets it to DefaultOptions on next use.
func SetDefaultExecutor(e *Executor) {
	defaultExecutor.Store(e)
}

// iterate visits every coordinate of size, distributing the outermost
// dimension across workers in ModeParallelOuter. Panics raised by fn on a
// worker are re-raised on the calling goroutine, even when another worker
// returned an error first. Otherwise the first error is returned.
func (e *Executor) iterate(size Range, fn func(ID) error) error {
	outer := 0
	if size.Size() > 0 {
		outer = size.Get(0)
	}
	if e.opts.Mode == ModeSequential || outer <= 1 || e.Workers() == 1 {
		return Iterate(size, fn)
	}

	// A panic wins over kernel errors from other workers, whichever
	// finished first.
	var stop atomic.Bool
	var panicked atomic.Pointer[workerpool.PanicError]
	body := func(start, end int) error {
		err := workerpool.CatchPanic(func() error {
			return iterateOuterSlice(size, start, end, &stop, fn)
		})
		var pe *workerpool.PanicError
		if errors.As(err, &pe) {
			panicked.CompareAndSwap(nil, pe)
			stop.Store(true)
		}
		return err
	}

	var err error
	if e.opts.Pool != nil {
		err = e.runOnPool(outer, body)
	} else {
		err = e.fanOut(outer, body)
	}

	if pe := panicked.Load(); pe != nil {
		panic(pe)
	}
	return err
}

func (e *Executor) runOnPool(n int, body func(start, end int) error) error {
	if e.opts.Schedule == ScheduleDynamic {
		return e.opts.Pool.ParallelForAtomicBatched(n, e.opts.Batch, body)
	}
	return e.opts.Pool.ParallelFor(n, body)
}

// fanOut runs body over [0, n) on at most Workers goroutines and waits for
// all of them.
func (e *Executor) fanOut(n int, body func(start, end int) error) error {
	workers := min(e.opts.Workers, n)
	var g errgroup.Group
	g.SetLimit(workers)

	if e.opts.Schedule == ScheduleDynamic {
		batch := e.opts.Batch
		var next atomic.Int64
		for range workers {
			g.Go(func() error {
				return workerpool.CatchPanic(func() error {
					for {
						start := int(next.Add(int64(batch))) - batch
						if start >= n {
							return nil
						}
						if err := body(start, min(start+batch, n)); err != nil {
							return err
						}
					}
				})
			})
		}
		return g.Wait()
	}

	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		g.Go(func() error {
			return workerpool.CatchPanic(func() error {
				return body(start, min(start+chunk, n))
			})
		})
	}
	return g.Wait()
}
