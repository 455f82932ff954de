// Copyright 2025 The go-nhbench Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
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
	t.Setenv("NH_WORKERS", "")
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("NH_WORKERS", "3")
	pool := New(-1)
	defer pool.Close()

	if pool.NumWorkers() != 3 {
		t.Errorf("NumWorkers() = %d, want 3", pool.NumWorkers())
	}
}

func TestParallelFor(t *testing.T) {
	t.Setenv("NH_SEQUENTIAL", "")
	pool := New(4)
	defer pool.Close()

	n := 103
	visits := make([]int32, n)

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&visits[i], 1)
		}
	})

	for i, v := range visits {
		if v != 1 {
			t.Errorf("visits[%d] = %d, want 1", i, v)
		}
	}
	if pool.Dispatched() != 4 {
		t.Errorf("Dispatched() = %d, want 4", pool.Dispatched())
	}
}

func TestParallelForBatched(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	n := 100
	visits := make([]int32, n)

	pool.ParallelForBatched(n, 7, func(start, end int) {
		if end-start > 7 {
			t.Errorf("batch [%d, %d) larger than 7", start, end)
		}
		for i := start; i < end; i++ {
			atomic.AddInt32(&visits[i], 1)
		}
	})

	for i, v := range visits {
		if v != 1 {
			t.Errorf("visits[%d] = %d, want 1", i, v)
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 3
	var count atomic.Int32

	pool.ParallelFor(n, func(start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	pool.ParallelFor(0, func(start, end int) {
		called = true
	})
	pool.ParallelForBatched(0, 4, func(start, end int) {
		called = true
	})

	if called {
		t.Error("n=0 should not call fn")
	}
}

func TestNilPoolRunsSequentially(t *testing.T) {
	var pool *Pool

	var calls int
	pool.ParallelFor(50, func(start, end int) {
		calls++
		if start != 0 || end != 50 {
			t.Errorf("got range [%d, %d), want [0, 50)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if pool.NumWorkers() != 1 || pool.Dispatched() != 0 {
		t.Error("nil pool should report one worker and no dispatches")
	}
	pool.Close()
}

func TestSequentialEnv(t *testing.T) {
	t.Setenv("NH_SEQUENTIAL", "1")
	pool := New(4)
	defer pool.Close()

	pool.ParallelFor(1000, func(start, end int) {})
	if pool.Dispatched() != 0 {
		t.Errorf("Dispatched() = %d with NH_SEQUENTIAL set, want 0", pool.Dispatched())
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

	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
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

	data := make([]float32, 1<<16)
	b.ResetTimer()
	for b.Loop() {
		pool.ParallelFor(len(data), func(start, end int) {
			for i := start; i < end; i++ {
				data[i]++
			}
		})
	}
}
