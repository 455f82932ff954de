// Copyright 2025 go-nhbench Authors
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

package harness

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ajroetker/go-nhbench/internal/logger"
	"github.com/ajroetker/go-nhbench/nh"
	"github.com/ajroetker/go-nhbench/nh/contrib/workerpool"
)

var errNoIterations = errors.New("benchmark ran no iterations")

// Config controls a benchmark run.
type Config struct {
	// Repeats is the number of timed runs per case; each yields one sample.
	Repeats int
	// Warmup runs are timed and discarded.
	Warmup int
	// Parallelism > 0 times the case with b.RunParallel using
	// Parallelism*GOMAXPROCS goroutines, each with its own output.
	Parallelism int
	// Workers sizes the filters' worker pool. Zero filters sequentially;
	// a negative value uses nh.DefaultWorkers().
	Workers int
	Seed    uint64
}

// DefaultConfig matches the classic harness settings.
func DefaultConfig() Config {
	return Config{Repeats: 5, Warmup: 1, Seed: 1}
}

// Result is the outcome of one case.
type Result struct {
	Case    Case
	Samples []float64
	Summary Summary
}

// opFactory returns a fresh operation with its own output buffer.
type opFactory func() func() error

// measureFunc returns the ns/op of the operations built by newOp.
type measureFunc func(newOp opFactory, parallelism int) (float64, error)

// Runner times cases.
type Runner struct {
	cfg     Config
	log     logger.Logger
	pool    *workerpool.Pool
	measure measureFunc
}

// NewRunner creates a Runner. A nil log discards output. Close releases
// the worker pool.
func NewRunner(cfg Config, log logger.Logger) (*Runner, error) {
	if cfg.Repeats <= 0 {
		return nil, nh.InvalidArgumentf("repeats must be > 0: %d", cfg.Repeats)
	}
	if cfg.Warmup < 0 {
		return nil, nh.InvalidArgumentf("warmup must be >= 0: %d", cfg.Warmup)
	}
	if log == nil {
		log = logger.Nop{}
	}
	r := &Runner{cfg: cfg, log: log, measure: benchmark}
	if cfg.Workers != 0 {
		r.pool = workerpool.New(max(cfg.Workers, 0))
	}
	return r, nil
}

// Close shuts down the worker pool, if any.
func (r *Runner) Close() {
	r.pool.Close()
}

// Run times every case in order. On error or cancellation it returns the
// results completed so far.
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	arrays, err := inputs(ctx, cases, r.cfg.Seed, r.pool.NumWorkers())
	if err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(cases))
	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		r.log.Debug("runner", "case started", logger.Fields{
			"case":  c.Name(),
			"index": i + 1,
			"total": len(cases),
		})
		res, err := r.runCase(ctx, c, arrays[FormatShape(c.Shape)])
		if err != nil {
			return results, fmt.Errorf("%s: %w", c.Name(), err)
		}
		r.log.Info("runner", "case finished", logger.Fields{
			"case":    c.Name(),
			"mean_ns": res.Summary.Mean,
			"min_ns":  res.Summary.Min,
		})
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runCase(ctx context.Context, c Case, in *nh.Array[float32]) (Result, error) {
	newOp := func() func() error {
		out := in.NewLike()
		return func() error { return c.Apply(in, out, r.pool) }
	}
	for range r.cfg.Warmup {
		if _, err := r.measure(newOp, r.cfg.Parallelism); err != nil {
			return Result{}, err
		}
	}
	samples := make([]float64, 0, r.cfg.Repeats)
	for range r.cfg.Repeats {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		ns, err := r.measure(newOp, r.cfg.Parallelism)
		if err != nil {
			return Result{}, err
		}
		samples = append(samples, ns)
	}
	return Result{Case: c, Samples: samples, Summary: Summarize(samples)}, nil
}

// benchmark runs the operation once to surface errors, then times it with
// testing.Benchmark.
func benchmark(newOp opFactory, parallelism int) (float64, error) {
	op := newOp()
	if err := op(); err != nil {
		return 0, err
	}
	res := testing.Benchmark(func(b *testing.B) {
		if parallelism <= 0 {
			for b.Loop() {
				_ = op()
			}
			return
		}
		b.SetParallelism(parallelism)
		b.RunParallel(func(pb *testing.PB) {
			op := newOp()
			for pb.Next() {
				_ = op()
			}
		})
	})
	if res.N == 0 {
		return 0, errNoIterations
	}
	return float64(res.T.Nanoseconds()) / float64(res.N), nil
}
