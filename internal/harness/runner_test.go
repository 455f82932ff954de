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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-nhbench/nh"
	"github.com/ajroetker/go-nhbench/nh/contrib/filter"
)

// countingMeasure runs each op once and reports 1, 2, 3, ... as ns/op.
func countingMeasure(calls *int) measureFunc {
	return func(newOp opFactory, _ int) (float64, error) {
		if err := newOp()(); err != nil {
			return 0, err
		}
		*calls++
		return float64(*calls), nil
	}
}

func smallMatrix() Matrix {
	return Matrix{
		Ops:        []Op{OpMin},
		Strategies: []filter.Strategy{filter.StrategyReference, filter.StrategySeparable},
		Boundaries: []nh.Boundary{nh.BoundaryMirror},
		Sigmas:     []int{1},
		Shapes:     [][]int{{12, 9}},
	}
}

func TestRunner_Run(t *testing.T) {
	r, err := NewRunner(Config{Repeats: 3, Warmup: 1, Seed: 3}, nil)
	require.NoError(t, err)
	defer r.Close()
	var calls int
	r.measure = countingMeasure(&calls)

	results, err := r.Run(context.Background(), smallMatrix().Cases())
	require.NoError(t, err)
	require.Len(t, results, 2)

	// One warmup then three samples per case.
	assert.Equal(t, 8, calls)
	assert.Equal(t, []float64{2, 3, 4}, results[0].Samples)
	assert.Equal(t, []float64{6, 7, 8}, results[1].Samples)
	assert.InDelta(t, 3.0, results[0].Summary.Mean, 1e-12)
	assert.Equal(t, filter.StrategySeparable, results[1].Case.Strategy)
}

func TestRunner_WithPool(t *testing.T) {
	r, err := NewRunner(Config{Repeats: 1, Workers: 2}, nil)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, 2, r.pool.NumWorkers())

	var calls int
	r.measure = countingMeasure(&calls)
	_, err = r.Run(context.Background(), smallMatrix().Cases())
	require.NoError(t, err)
}

func TestRunner_CaseError(t *testing.T) {
	r, err := NewRunner(Config{Repeats: 2}, nil)
	require.NoError(t, err)
	defer r.Close()
	var calls int
	r.measure = countingMeasure(&calls)

	cases := smallMatrix().Cases()
	cases[1].Sigma = -1
	results, err := r.Run(context.Background(), cases)
	assert.ErrorIs(t, err, nh.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "sigma=-1")
	assert.Len(t, results, 1)
}

func TestRunner_Canceled(t *testing.T) {
	r, err := NewRunner(Config{Repeats: 1}, nil)
	require.NoError(t, err)
	defer r.Close()
	var calls int
	r.measure = countingMeasure(&calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Run(ctx, smallMatrix().Cases())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestNewRunner_Invalid(t *testing.T) {
	_, err := NewRunner(Config{Repeats: 0}, nil)
	assert.ErrorIs(t, err, nh.ErrInvalidArgument)
	_, err = NewRunner(Config{Repeats: 1, Warmup: -1}, nil)
	assert.ErrorIs(t, err, nh.ErrInvalidArgument)
}

func TestBenchmark(t *testing.T) {
	if testing.Short() {
		t.Skip("times real runs")
	}
	in, err := RandomArray([]int{16, 16}, 1)
	require.NoError(t, err)
	c := Case{Op: OpMin, Strategy: filter.StrategySeparable, Boundary: nh.BoundaryMirror, Sigma: 1, Shape: in.Shape()}
	newOp := func() func() error {
		out := in.NewLike()
		return func() error { return c.Apply(in, out, nil) }
	}

	ns, err := benchmark(newOp, 0)
	require.NoError(t, err)
	assert.Greater(t, ns, 0.0)

	ns, err = benchmark(newOp, 1)
	require.NoError(t, err)
	assert.Greater(t, ns, 0.0)
}
