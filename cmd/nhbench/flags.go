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

package main

import (
	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/ajroetker/go-nhbench/internal/harness"
	"github.com/ajroetker/go-nhbench/nh"
	"github.com/ajroetker/go-nhbench/nh/contrib/filter"
)

// matrixFlags holds the case matrix as entered on the command line.
type matrixFlags struct {
	ops        []string
	strategies []string
	boundaries []string
	sigmas     []int
	shapes     []string
}

func names[T interface{ String() string }](values []T) []string {
	return lo.Map(values, func(v T, _ int) string { return v.String() })
}

func opNames(ops []harness.Op) []string {
	return lo.Map(ops, func(op harness.Op, _ int) string { return string(op) })
}

// defaultMatrixFlags renders m as flag defaults.
func defaultMatrixFlags(m harness.Matrix) matrixFlags {
	return matrixFlags{
		ops:        opNames(m.Ops),
		strategies: names(m.Strategies),
		boundaries: names(m.Boundaries),
		sigmas:     m.Sigmas,
		shapes:     lo.Map(m.Shapes, func(s []int, _ int) string { return harness.FormatShape(s) }),
	}
}

func (f *matrixFlags) register(fs *pflag.FlagSet) {
	fs.StringSliceVar(&f.ops, "ops", f.ops, "window reductions: min, max, mean")
	fs.StringSliceVar(&f.strategies, "strategies", f.strategies,
		"filter strategies: reference, neighborhood, separable")
	fs.StringSliceVar(&f.boundaries, "boundaries", f.boundaries,
		"boundary policies: mirror, mirror-single, border, periodic, constant")
	fs.IntSliceVar(&f.sigmas, "sigmas", f.sigmas, "window radii")
	fs.StringSliceVar(&f.shapes, "shapes", f.shapes, "array shapes such as 100x100 or 64x64x32")
}

// matrix parses and validates the flags.
func (f *matrixFlags) matrix() (harness.Matrix, error) {
	var (
		m   harness.Matrix
		err error
	)
	if m.Ops, err = parseAll(f.ops, harness.ParseOp); err != nil {
		return m, err
	}
	if m.Strategies, err = parseAll(f.strategies, filter.ParseStrategy); err != nil {
		return m, err
	}
	if m.Boundaries, err = parseAll(f.boundaries, nh.ParseBoundary); err != nil {
		return m, err
	}
	if m.Shapes, err = parseAll(f.shapes, harness.ParseShape); err != nil {
		return m, err
	}
	m.Sigmas = f.sigmas
	return m, m.Validate()
}

func parseAll[T any](values []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(values))
	for _, v := range values {
		p, err := parse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
