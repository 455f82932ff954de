// Copyright 2025 The go-nhbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool for
// splitting array passes across goroutines. A Pool is created once and
// reused for every filter call, so repeated timing runs do not pay
// goroutine spawn costs inside the measured region.
//
// Work is always expressed as a flat index range [0, n) that the pool cuts
// into disjoint sub-ranges; callers write only to the outputs of their own
// sub-range, which is what makes the passes race-free without locks.
//
// Usage:
//
//	pool := workerpool.New(0) // NH_WORKERS or GOMAXPROCS
//	defer pool.Close()
//
//	pool.ParallelFor(out.Len(), func(start, end int) {
//	    filterRange(in, out, start, end)
//	})
//
// A nil *Pool is valid and runs everything on the calling goroutine.
package workerpool

import (
	"sync"
	"sync/atomic"

	"github.com/ajroetker/go-nhbench/nh"
)

// Pool is a fixed set of goroutines fed through a buffered channel.
type Pool struct {
	numWorkers int
	tasks      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
	dispatched atomic.Int64
}

// task is one sub-range handed to a worker.
type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines.
// If numWorkers <= 0, uses nh.DefaultWorkers().
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = nh.DefaultWorkers()
	}

	p := &Pool{
		numWorkers: numWorkers,
		tasks:      make(chan task, numWorkers*2),
	}
	for range numWorkers {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers, or 1 for a nil pool.
func (p *Pool) NumWorkers() int {
	if p == nil {
		return 1
	}
	return p.numWorkers
}

// Dispatched returns how many sub-ranges have been handed to workers since
// the pool was created. Sequential fallbacks are not counted.
func (p *Pool) Dispatched() int64 {
	if p == nil {
		return 0
	}
	return p.dispatched.Load()
}

// Close stops the workers after queued work drains. Safe to call repeatedly.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// sequential reports whether work of size n should stay on the caller.
func (p *Pool) sequential(n int) bool {
	return p == nil || p.numWorkers == 1 || n == 1 || p.closed.Load() || nh.SequentialEnv()
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous sub-ranges of
// near-equal size and runs fn on each. Blocks until all sub-ranges finish.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if p.sequential(n) {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, n)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.dispatched.Add(1)
		p.tasks <- task{
			run:  func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}

// ParallelForBatched runs fn over [0, n) in batches of batchSize that
// workers claim with an atomic counter. Use it when per-index cost varies,
// e.g. neighborhoods near edges that need boundary remapping.
func (p *Pool) ParallelForBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if batchSize <= 0 {
		batchSize = 1
	}

	numBatches := (n + batchSize - 1) / batchSize
	if p.sequential(numBatches) {
		fn(0, n)
		return
	}

	workers := min(p.numWorkers, numBatches)
	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.dispatched.Add(1)
		p.tasks <- task{
			run: func() {
				for {
					start := int(next.Add(int64(batchSize))) - batchSize
					if start >= n {
						return
					}
					fn(start, min(start+batchSize, n))
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
