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

package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-sycl/sycl"
	"github.com/ajroetker/go-sycl/sycl/contrib/workerpool"
)

type runFlags struct {
	global     string
	local      string
	offset     string
	sequential bool
	workers    int
	schedule   string
	batch      int
	pool       bool
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a self-checking nd-range launch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd, &f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.global, "global", "64,64", "Comma-separated global range, 1 to 3 sizes")
	flags.StringVar(&f.local, "local", "8,8", "Comma-separated local (work-group) range")
	flags.StringVar(&f.offset, "offset", "", "Comma-separated global offset (default: zero)")
	flags.BoolVar(&f.sequential, "sequential", false, "Run on the calling goroutine in row-major order")
	flags.IntVar(&f.workers, "workers", 0, "Number of workers (default: GOMAXPROCS)")
	flags.StringVar(&f.schedule, "schedule", "static", "Distribution of work-groups: static or dynamic")
	flags.IntVar(&f.batch, "batch", 1, "Work-groups grabbed at once by the dynamic schedule")
	flags.BoolVar(&f.pool, "pool", false, "Run on a persistent worker pool instead of per-launch goroutines")
	return cmd
}

func runLaunch(cmd *cobra.Command, f *runFlags) error {
	global, err := parseSizes(f.global)
	if err != nil {
		return fmt.Errorf("--global: %w", err)
	}
	local, err := parseSizes(f.local)
	if err != nil {
		return fmt.Errorf("--local: %w", err)
	}
	var offset []sycl.ID
	if f.offset != "" {
		o, err := parseSizes(f.offset)
		if err != nil {
			return fmt.Errorf("--offset: %w", err)
		}
		offset = append(offset, o.ID())
	}
	if global.Dims() != local.Dims() || (len(offset) > 0 && offset[0].Dims() != global.Dims()) {
		return fmt.Errorf("--global %v, --local %v and --offset must have the same number of sizes", global, local)
	}
	schedule, err := sycl.ParseSchedule(f.schedule)
	if err != nil {
		return err
	}

	opts := sycl.Options{
		Mode:     sycl.ModeParallelOuter,
		Workers:  f.workers,
		Schedule: schedule,
		Batch:    f.batch,
	}
	if f.sequential {
		opts.Mode = sycl.ModeSequential
	}
	if f.pool {
		pool := workerpool.New(f.workers)
		defer pool.Close()
		opts.Pool = pool
	}
	q, err := sycl.NewQueue(nil, &opts)
	if err != nil {
		return err
	}

	nd := sycl.NewNDRange(global, local, offset...)
	if err := nd.Validate(); err != nil {
		return fmt.Errorf("%v: %w", nd, err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "device:  %s\n", q.Context().Device())
	fmt.Fprintf(out, "nd:      %v, groups %v\n", nd, nd.GroupRange())
	fmt.Fprintf(out, "mode:    %s, schedule %s, workers %d\n",
		opts.Mode, schedule, q.Executor().Workers())

	buf := sycl.NewBuffer[int64](global)
	writes := sycl.NewBuffer[int32](global)
	start := time.Now()
	err = q.Submit(func(h *sycl.Handler) error {
		acc := buf.Access(sycl.AccessWrite)
		cnt := writes.Access(sycl.AccessAtomic)
		base := nd.Offset()
		return h.ParallelForND(nd, sycl.KernelLambda("fill_offsets", func(it sycl.Item) error {
			// Accessors are indexed from zero: remove the launch offset.
			id := rebase(it.Global(), base)
			*acc.At(id) = int64(global.Linearize(id))
			atomic.AddInt32(cnt.At(id), 1)
			return nil
		}))
	})
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	check := buf.Access(sycl.AccessRead)
	cnt := writes.Access(sycl.AccessRead)
	for off := range buf.Count() {
		if n := *cnt.Linear(off); n != 1 {
			return fmt.Errorf("element %v written %d times", global.Delinearize(off), n)
		}
		if v := *check.Linear(off); v != int64(off) {
			return fmt.Errorf("element %v = %d, want %d", global.Delinearize(off), v, off)
		}
	}
	fmt.Fprintf(out, "ok:      %d work-items in %s\n", global.Size(), elapsed)
	return nil
}

// rebase subtracts base from id.
func rebase(id, base sycl.ID) sycl.ID {
	c := id.Slice()
	for i := range c {
		c[i] -= base.Get(i)
	}
	return sycl.NewID(c...)
}

// parseSizes parses a comma-separated list of 1 to 3 non-negative integers.
func parseSizes(s string) (sycl.Range, error) {
	parts := lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	})
	parts = lo.Compact(parts)
	if len(parts) == 0 || len(parts) > sycl.MaxDims {
		return sycl.Range{}, fmt.Errorf("want 1 to %d sizes, got %q", sycl.MaxDims, s)
	}
	var parseErr error
	sizes := lo.Map(parts, func(p string, _ int) int {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			if parseErr == nil {
				parseErr = fmt.Errorf("invalid size %q", p)
			}
			return 0
		}
		return n
	})
	if parseErr != nil {
		return sycl.Range{}, parseErr
	}
	return sycl.NewRange(sizes...), nil
}
