// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// splitting image rows across goroutines. A Pool is created once and reused
// across many reductions, so repeated benchmark iterations do not pay for
// goroutine spawning.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for range iterations {
//	    pool.ParallelFor(height, func(start, end int) {
//	        reduceRows(start, end)
//	    })
//	}
package workerpool

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned once at creation and
// serve every ParallelFor call until Close.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers goroutines.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool after pending work completes.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// ParallelFor calls fn on disjoint contiguous ranges covering [0, n), one
// range per worker, and blocks until all of them return.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if p.closed.Load() || workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	p.run(workers, func(worker int) {
		if start := worker * chunk; start < n {
			fn(start, min(start+chunk, n))
		}
	})
}

// ParallelForContext is like ParallelFor but hands out ranges of at most
// batch items from a shared counter. Once ctx is done, workers stop taking
// new ranges; ranges already running are allowed to finish.
//
// It returns ctx.Err() if the context was done before every range was
// handed out, and nil otherwise.
func (p *Pool) ParallelForContext(ctx context.Context, n, batch int, fn func(start, end int)) error {
	if n <= 0 {
		return ctx.Err()
	}
	if batch <= 0 {
		batch = 1
	}

	var next atomic.Int64
	var stopped atomic.Bool
	grab := func() (int, int, bool) {
		if ctx.Err() != nil {
			stopped.Store(true)
			return 0, 0, false
		}
		start := int(next.Add(int64(batch))) - batch
		if start >= n {
			return 0, 0, false
		}
		return start, min(start+batch, n), true
	}
	loop := func() {
		for {
			start, end, ok := grab()
			if !ok {
				return
			}
			fn(start, end)
		}
	}

	batches := (n + batch - 1) / batch
	workers := min(p.numWorkers, batches)
	if p.closed.Load() || workers == 1 {
		loop()
	} else {
		p.run(workers, func(int) { loop() })
	}

	if stopped.Load() {
		return ctx.Err()
	}
	return nil
}

// run submits one item per worker index and waits for all of them.
func (p *Pool) run(workers int, item func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		p.workC <- workItem{fn: func() { item(i) }, barrier: &wg}
	}
	wg.Wait()
}
