// Copyright 2025 The go-sycl Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestParallelFor(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	results := make([]int, n)

	err := pool.ParallelFor(n, func(start, end int) error {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelFor() error = %v", err)
	}

	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func TestParallelForAtomic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	var hits [100]atomic.Int32

	err := pool.ParallelForAtomic(n, func(i int) error {
		hits[i].Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelForAtomic() error = %v", err)
	}

	for i := range n {
		if got := hits[i].Load(); got != 1 {
			t.Errorf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestParallelForAtomicBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 9, 10, 11, 100} {
		var count atomic.Int32
		err := pool.ParallelForAtomicBatched(n, 10, func(start, end int) error {
			if end-start > 10 {
				t.Errorf("batch [%d, %d) larger than 10", start, end)
			}
			count.Add(int32(end - start))
			return nil
		})
		if err != nil {
			t.Fatalf("n=%d: error = %v", n, err)
		}
		if count.Load() != int32(n) {
			t.Errorf("n=%d: covered %d indices", n, count.Load())
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 3
	var count atomic.Int32

	_ = pool.ParallelFor(n, func(start, end int) error {
		count.Add(int32(end - start))
		return nil
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	err := pool.ParallelFor(0, func(start, end int) error {
		called = true
		return nil
	})

	if called {
		t.Error("ParallelFor with n=0 should not call fn")
	}
	if err != nil {
		t.Errorf("ParallelFor with n=0 error = %v", err)
	}
}

func TestParallelForError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	errBoom := errors.New("boom")
	err := pool.ParallelFor(100, func(start, end int) error {
		if start <= 50 && 50 < end {
			return errBoom
		}
		return nil
	})
	if !errors.Is(err, errBoom) {
		t.Errorf("ParallelFor() error = %v, want %v", err, errBoom)
	}
}

func TestParallelForAtomicStopsAfterError(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	errBoom := errors.New("boom")
	var started atomic.Int32
	n := 10000
	err := pool.ParallelForAtomic(n, func(i int) error {
		started.Add(1)
		if i == 0 {
			return errBoom
		}
		time.Sleep(time.Microsecond)
		return nil
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("ParallelForAtomic() error = %v, want %v", err, errBoom)
	}
	// Workers that already grabbed an index finish it; nobody grabs more
	// once the failure is recorded, so far fewer than n indices run.
	if started.Load() == int32(n) {
		t.Errorf("all %d indices ran despite the failure", n)
	}
}

func TestParallelForPanic(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	err := pool.ParallelFor(100, func(start, end int) error {
		if start == 0 {
			panic("kaboom")
		}
		return nil
	})
	var pe *PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("ParallelFor() error = %v, want *PanicError", err)
	}
	if pe.Value != "kaboom" {
		t.Errorf("PanicError.Value = %v, want kaboom", pe.Value)
	}
	if len(pe.Stack) == 0 {
		t.Error("PanicError.Stack is empty")
	}

	// The pool keeps working after a captured panic.
	var count atomic.Int32
	_ = pool.ParallelFor(8, func(start, end int) error {
		count.Add(int32(end - start))
		return nil
	})
	if count.Load() != 8 {
		t.Errorf("after panic: count = %d, want 8", count.Load())
	}
}

func TestCatchPanicUnwrapsErrors(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := CatchPanic(func() error { panic(sentinel) })
	if !errors.Is(err, sentinel) {
		t.Errorf("CatchPanic() = %v, want wrapping %v", err, sentinel)
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	_ = pool.ParallelFor(n, func(start, end int) error {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
		return nil
	})

	for i := range n {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.ParallelFor(n, func(start, end int) error {
			for j := start; j < end; j++ {
				_ = j * j
			}
			return nil
		})
	}
}

func BenchmarkParallelForAtomicBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 1000

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pool.ParallelForAtomicBatched(n, 10, func(start, end int) error {
			for j := start; j < end; j++ {
				_ = j * j
			}
			return nil
		})
	}
}
