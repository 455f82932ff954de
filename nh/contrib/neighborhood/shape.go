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

package neighborhood

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ajroetker/go-nhbench/nh"
)

// Shape enumerates the offsets of a neighborhood relative to its center.
type Shape interface {
	// Offsets returns one ndims-long offset per neighborhood member.
	Offsets(ndims int) ([][]int, error)
	String() string
}

// RectangleShape is the hypercube [-Span, Span]^N.
type RectangleShape struct {
	Span       int
	SkipCenter bool
}

func (s RectangleShape) Offsets(ndims int) ([][]int, error) {
	if err := nh.ValidateRadius(s.Span); err != nil {
		return nil, err
	}
	if err := validateDims(ndims); err != nil {
		return nil, err
	}
	spans := make([]int, ndims)
	for d := range spans {
		spans[d] = s.Span
	}
	return box(spans, func(o []int) bool {
		return !s.SkipCenter || !isCenter(o)
	}), nil
}

func (s RectangleShape) String() string {
	return fmt.Sprintf("rectangle(span=%d, skipCenter=%v)", s.Span, s.SkipCenter)
}

// CenteredRectangleShape is a box with its own span along each axis.
type CenteredRectangleShape struct {
	Span       []int
	SkipCenter bool
}

func (s CenteredRectangleShape) Offsets(ndims int) ([][]int, error) {
	if err := validateDims(ndims); err != nil {
		return nil, err
	}
	if len(s.Span) != ndims {
		return nil, nh.InvalidArgumentf("centered rectangle has %d spans, want %d", len(s.Span), ndims)
	}
	for _, span := range s.Span {
		if err := nh.ValidateRadius(span); err != nil {
			return nil, err
		}
	}
	return box(s.Span, func(o []int) bool {
		return !s.SkipCenter || !isCenter(o)
	}), nil
}

func (s CenteredRectangleShape) String() string {
	return fmt.Sprintf("centered-rectangle(span=%v, skipCenter=%v)", s.Span, s.SkipCenter)
}

// DiamondShape holds the offsets within L1 distance Radius.
type DiamondShape struct {
	Radius int
}

func (s DiamondShape) Offsets(ndims int) ([][]int, error) {
	if err := nh.ValidateRadius(s.Radius); err != nil {
		return nil, err
	}
	if err := validateDims(ndims); err != nil {
		return nil, err
	}
	return box(uniform(s.Radius, ndims), func(o []int) bool {
		l1 := 0
		for _, v := range o {
			l1 += abs(v)
		}
		return l1 <= s.Radius
	}), nil
}

func (s DiamondShape) String() string {
	return fmt.Sprintf("diamond(radius=%d)", s.Radius)
}

// DiamondTipsShape holds the 2N offsets at +-Radius along each axis.
// A zero radius collapses to the center alone.
type DiamondTipsShape struct {
	Radius int
}

func (s DiamondTipsShape) Offsets(ndims int) ([][]int, error) {
	if err := nh.ValidateRadius(s.Radius); err != nil {
		return nil, err
	}
	if err := validateDims(ndims); err != nil {
		return nil, err
	}
	if s.Radius == 0 {
		return [][]int{make([]int, ndims)}, nil
	}
	offsets := make([][]int, 0, 2*ndims)
	for d := range ndims {
		for _, sign := range []int{-1, 1} {
			o := make([]int, ndims)
			o[d] = sign * s.Radius
			offsets = append(offsets, o)
		}
	}
	return offsets, nil
}

func (s DiamondTipsShape) String() string {
	return fmt.Sprintf("diamond-tips(radius=%d)", s.Radius)
}

// HorizontalLineShape is the segment [-Span, Span] along dimension Dim.
type HorizontalLineShape struct {
	Span       int
	Dim        int
	SkipCenter bool
}

func (s HorizontalLineShape) Offsets(ndims int) ([][]int, error) {
	if err := nh.ValidateRadius(s.Span); err != nil {
		return nil, err
	}
	if err := validateDims(ndims); err != nil {
		return nil, err
	}
	if s.Dim < 0 || s.Dim >= ndims {
		return nil, nh.InvalidArgumentf("line dimension %d out of range for %d dimensions", s.Dim, ndims)
	}
	offsets := make([][]int, 0, 2*s.Span+1)
	for k := -s.Span; k <= s.Span; k++ {
		if k == 0 && s.SkipCenter {
			continue
		}
		o := make([]int, ndims)
		o[s.Dim] = k
		offsets = append(offsets, o)
	}
	return offsets, nil
}

func (s HorizontalLineShape) String() string {
	return fmt.Sprintf("horizontal-line(span=%d, dim=%d, skipCenter=%v)", s.Span, s.Dim, s.SkipCenter)
}

// HyperSphereShape holds the offsets within Euclidean distance Radius.
type HyperSphereShape struct {
	Radius int
}

func (s HyperSphereShape) Offsets(ndims int) ([][]int, error) {
	if err := nh.ValidateRadius(s.Radius); err != nil {
		return nil, err
	}
	if err := validateDims(ndims); err != nil {
		return nil, err
	}
	r2 := s.Radius * s.Radius
	return box(uniform(s.Radius, ndims), func(o []int) bool {
		d2 := 0
		for _, v := range o {
			d2 += v * v
		}
		return d2 <= r2
	}), nil
}

func (s HyperSphereShape) String() string {
	return fmt.Sprintf("hypersphere(radius=%d)", s.Radius)
}

// PairOfPointsShape holds the center and the single point at Offset.
type PairOfPointsShape struct {
	Offset []int
}

func (s PairOfPointsShape) Offsets(ndims int) ([][]int, error) {
	if err := validateDims(ndims); err != nil {
		return nil, err
	}
	if len(s.Offset) != ndims {
		return nil, nh.InvalidArgumentf("pair offset has %d components, want %d", len(s.Offset), ndims)
	}
	return [][]int{make([]int, ndims), slices.Clone(s.Offset)}, nil
}

func (s PairOfPointsShape) String() string {
	return fmt.Sprintf("pair-of-points(offset=%v)", s.Offset)
}

// PeriodicLineShape holds k*Increments for k in [-Span, Span].
type PeriodicLineShape struct {
	Span       int
	Increments []int
}

func (s PeriodicLineShape) Offsets(ndims int) ([][]int, error) {
	if err := nh.ValidateRadius(s.Span); err != nil {
		return nil, err
	}
	if err := validateDims(ndims); err != nil {
		return nil, err
	}
	if len(s.Increments) != ndims {
		return nil, nh.InvalidArgumentf("periodic line has %d increments, want %d", len(s.Increments), ndims)
	}
	offsets := make([][]int, 0, 2*s.Span+1)
	for k := -s.Span; k <= s.Span; k++ {
		o := make([]int, ndims)
		for d, inc := range s.Increments {
			o[d] = k * inc
		}
		offsets = append(offsets, o)
	}
	return offsets, nil
}

func (s PeriodicLineShape) String() string {
	return fmt.Sprintf("periodic-line(span=%d, increments=%v)", s.Span, s.Increments)
}

// ShapeNames lists the names accepted by NewShape.
var ShapeNames = []string{
	"rectangle",
	"rectangle-sc",
	"centered-rectangle",
	"centered-rectangle-sc",
	"diamond",
	"diamond-tips",
	"horizontal-line",
	"horizontal-line-sc",
	"hypersphere",
	"pair-of-points",
	"periodic-line",
}

// NewShape builds a shape by name with every size parameter set to span.
// The "-sc" suffix skips the center where the shape supports it. Pair of
// points uses the offset (span, ..., span) and periodic lines a unit
// increment along every axis.
func NewShape(name string, span, ndims int) (Shape, error) {
	if err := validateDims(ndims); err != nil {
		return nil, err
	}
	name = strings.ToLower(strings.TrimSpace(name))
	base, skip := strings.CutSuffix(name, "-sc")
	switch base {
	case "rectangle":
		return RectangleShape{Span: span, SkipCenter: skip}, nil
	case "centered-rectangle":
		return CenteredRectangleShape{Span: uniform(span, ndims), SkipCenter: skip}, nil
	case "horizontal-line":
		return HorizontalLineShape{Span: span, Dim: 0, SkipCenter: skip}, nil
	}
	if skip {
		return nil, nh.InvalidArgumentf("shape %q has no skip-center variant", base)
	}
	switch base {
	case "diamond":
		return DiamondShape{Radius: span}, nil
	case "diamond-tips":
		return DiamondTipsShape{Radius: span}, nil
	case "hypersphere":
		return HyperSphereShape{Radius: span}, nil
	case "pair-of-points":
		return PairOfPointsShape{Offset: uniform(span, ndims)}, nil
	case "periodic-line":
		return PeriodicLineShape{Span: span, Increments: uniform(1, ndims)}, nil
	default:
		return nil, nh.InvalidArgumentf("unknown shape %q", name)
	}
}

func validateDims(ndims int) error {
	if ndims <= 0 {
		return nh.InvalidArgumentf("shape needs at least one dimension, got %d", ndims)
	}
	return nil
}

// box enumerates [-spans[d], spans[d]] in row-major order, keeping the
// offsets accepted by keep.
func box(spans []int, keep func([]int) bool) [][]int {
	o := make([]int, len(spans))
	for d, s := range spans {
		o[d] = -s
	}
	var offsets [][]int
	for {
		if keep(o) {
			offsets = append(offsets, slices.Clone(o))
		}
		d := len(o) - 1
		for ; d >= 0; d-- {
			o[d]++
			if o[d] <= spans[d] {
				break
			}
			o[d] = -spans[d]
		}
		if d < 0 {
			return offsets
		}
	}
}

func uniform(v, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}

func isCenter(o []int) bool {
	for _, v := range o {
		if v != 0 {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
