// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"
	"testing"
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

func TestParallelForCoversRows(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, n := range []int{1, 3, 4, 5, 100, 513} {
		visits := make([]int32, n)
		pool.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&visits[i], 1)
			}
		})
		for i, v := range visits {
			if v != 1 {
				t.Fatalf("n=%d: row %d visited %d times, want 1", n, i, v)
			}
		}
	}
}

func TestParallelForEmpty(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	called := false
	pool.ParallelFor(0, func(start, end int) { called = true })
	if called {
		t.Error("fn should not be called for n=0")
	}
}

func TestParallelForContext(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 1000
	var total atomic.Int64
	err := pool.ParallelForContext(context.Background(), n, 7, func(start, end int) {
		if end-start > 7 {
			t.Errorf("range [%d,%d) larger than batch", start, end)
		}
		for i := start; i < end; i++ {
			total.Add(int64(i))
		}
	})
	if err != nil {
		t.Fatalf("ParallelForContext: %v", err)
	}
	if want := int64(n * (n - 1) / 2); total.Load() != want {
		t.Errorf("sum = %d, want %d", total.Load(), want)
	}
}

func TestParallelForContextCancelled(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := pool.ParallelForContext(ctx, 100, 1, func(start, end int) {
		calls.Add(1)
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls.Load() != 0 {
		t.Errorf("fn called %d times after cancel, want 0", calls.Load())
	}
}

func TestParallelForContextCancelMidway(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	err := pool.ParallelForContext(ctx, 1000, 1, func(start, end int) {
		if calls.Add(1) == 10 {
			cancel()
		}
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if calls.Load() >= 1000 {
		t.Errorf("all %d ranges ran despite cancellation", calls.Load())
	}
}

func TestClosedPoolRunsSequentially(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	results := make([]int, 10)
	pool.ParallelFor(10, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i
		}
	})
	if err := pool.ParallelForContext(context.Background(), 10, 3, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] += i
		}
	}); err != nil {
		t.Fatalf("ParallelForContext: %v", err)
	}
	for i, v := range results {
		if v != 2*i {
			t.Errorf("results[%d] = %d, want %d", i, v, 2*i)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	data := make([]float32, 1<<16)
	for b.Loop() {
		pool.ParallelFor(len(data), func(start, end int) {
			for i := start; i < end; i++ {
				data[i] += 1
			}
		})
	}
}
