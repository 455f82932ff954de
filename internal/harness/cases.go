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

// Package harness times window filters over a matrix of cases and
// reports ns/op statistics. Timing is delegated to testing.Benchmark.
package harness

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/ajroetker/go-nhbench/nh"
	"github.com/ajroetker/go-nhbench/nh/contrib/filter"
	"github.com/ajroetker/go-nhbench/nh/contrib/workerpool"
)

// Op names the window reduction a case runs.
type Op string

const (
	OpMin  Op = "min"
	OpMax  Op = "max"
	OpMean Op = "mean"
)

// Ops lists every supported reduction.
var Ops = []Op{OpMin, OpMax, OpMean}

// ParseOp returns the op with the given name.
func ParseOp(name string) (Op, error) {
	op := Op(strings.ToLower(strings.TrimSpace(name)))
	if !lo.Contains(Ops, op) {
		return "", nh.InvalidArgumentf("unknown op %q", name)
	}
	return op, nil
}

// Case is one benchmarked configuration.
type Case struct {
	Op       Op
	Strategy filter.Strategy
	Boundary nh.Boundary
	Sigma    int
	Shape    []int
}

// Name identifies the case in logs and reports.
func (c Case) Name() string {
	return fmt.Sprintf("%s/%s/%s/sigma=%d/%s", c.Op, c.Strategy, c.Boundary, c.Sigma, FormatShape(c.Shape))
}

// Apply runs the case's filter from in into out.
func (c Case) Apply(in, out *nh.Array[float32], pool *workerpool.Pool) error {
	opts := []filter.Option{
		filter.WithBoundary(c.Boundary),
		filter.WithStrategy(c.Strategy),
		filter.WithPool(pool),
	}
	switch c.Op {
	case OpMin:
		return filter.MinFilterInto(in, out, c.Sigma, opts...)
	case OpMax:
		return filter.MaxFilterInto(in, out, c.Sigma, opts...)
	case OpMean:
		return filter.MeanFilterInto(in, out, c.Sigma, opts...)
	default:
		return nh.InvalidArgumentf("unknown op %q", c.Op)
	}
}

// FormatShape renders a shape as "100x100".
func FormatShape(shape []int) string {
	return strings.Join(lo.Map(shape, func(d int, _ int) string {
		return strconv.Itoa(d)
	}), "x")
}

// ParseShape parses "100x100" or "64x64x32".
func ParseShape(s string) ([]int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	shape := make([]int, len(parts))
	for i, p := range parts {
		d, err := strconv.Atoi(p)
		if err != nil {
			return nil, nh.InvalidArgumentf("shape %q: %v", s, err)
		}
		shape[i] = d
	}
	if err := nh.ValidateShape(shape); err != nil {
		return nil, fmt.Errorf("shape %q: %w", s, err)
	}
	return shape, nil
}

// Matrix is the cross product of benchmark parameters.
type Matrix struct {
	Ops        []Op
	Strategies []filter.Strategy
	Boundaries []nh.Boundary
	Sigmas     []int
	Shapes     [][]int
}

// DefaultMatrix mirrors the classic min-filter benchmark: a 100x100
// image filtered with sigma 1, 2 and 4.
func DefaultMatrix() Matrix {
	return Matrix{
		Ops:        []Op{OpMin},
		Strategies: filter.Strategies,
		Boundaries: []nh.Boundary{nh.BoundaryMirror},
		Sigmas:     []int{1, 2, 4},
		Shapes:     [][]int{{100, 100}},
	}
}

// Validate reports empty axes and invalid sigmas or shapes.
func (m Matrix) Validate() error {
	switch {
	case len(m.Ops) == 0:
		return nh.InvalidArgumentf("no ops")
	case len(m.Strategies) == 0:
		return nh.InvalidArgumentf("no strategies")
	case len(m.Boundaries) == 0:
		return nh.InvalidArgumentf("no boundaries")
	case len(m.Sigmas) == 0:
		return nh.InvalidArgumentf("no sigmas")
	case len(m.Shapes) == 0:
		return nh.InvalidArgumentf("no shapes")
	}
	for _, s := range m.Sigmas {
		if err := nh.ValidateRadius(s); err != nil {
			return err
		}
	}
	for _, shape := range m.Shapes {
		if err := nh.ValidateShape(shape); err != nil {
			return err
		}
	}
	return nil
}

// Cases expands the matrix, shape-major, dropping duplicate parameters.
func (m Matrix) Cases() []Case {
	shapes := lo.UniqBy(m.Shapes, FormatShape)
	ops := lo.Uniq(m.Ops)
	strategies := lo.Uniq(m.Strategies)
	boundaries := lo.Uniq(m.Boundaries)
	sigmas := lo.Uniq(m.Sigmas)

	cases := make([]Case, 0, len(shapes)*len(ops)*len(strategies)*len(boundaries)*len(sigmas))
	for _, shape := range shapes {
		for _, op := range ops {
			for _, sigma := range sigmas {
				for _, b := range boundaries {
					for _, s := range strategies {
						cases = append(cases, Case{
							Op:       op,
							Strategy: s,
							Boundary: b,
							Sigma:    sigma,
							Shape:    shape,
						})
					}
				}
			}
		}
	}
	return cases
}
