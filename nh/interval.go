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

package nh

import "slices"

// Interval is a half-open box [Lo, Hi) of coordinates.
type Interval struct {
	Lo []int
	Hi []int
}

// Full returns the interval covering every coordinate of shape.
func Full(shape []int) Interval {
	return Interval{
		Lo: make([]int, len(shape)),
		Hi: slices.Clone(shape),
	}
}

// Interior returns the interval of shape that keeps a distance of span from
// every edge, i.e. the centers whose [-span, span] window needs no
// out-of-bounds access.
func Interior(shape []int, span int) (Interval, error) {
	if err := ValidateRadius(span); err != nil {
		return Interval{}, err
	}
	iv := Interval{Lo: make([]int, len(shape)), Hi: make([]int, len(shape))}
	for d, n := range shape {
		if 2*span >= n {
			return Interval{}, InvalidArgumentf("span %d leaves no interior along dimension %d (size %d)", span, d, n)
		}
		iv.Lo[d] = span
		iv.Hi[d] = n - span
	}
	return iv, nil
}

// NumDims returns the number of dimensions.
func (iv Interval) NumDims() int {
	return len(iv.Lo)
}

// Shape returns the extent of the interval along each dimension.
func (iv Interval) Shape() []int {
	shape := make([]int, len(iv.Lo))
	for d := range shape {
		shape[d] = max(0, iv.Hi[d]-iv.Lo[d])
	}
	return shape
}

// Len returns the number of coordinates inside the interval.
func (iv Interval) Len() int {
	n := 1
	for _, s := range iv.Shape() {
		n *= s
	}
	return n
}

// Contains reports whether coord lies inside the interval.
func (iv Interval) Contains(coord []int) bool {
	if len(coord) != len(iv.Lo) {
		return false
	}
	for d, c := range coord {
		if c < iv.Lo[d] || c >= iv.Hi[d] {
			return false
		}
	}
	return true
}

// Within reports whether the interval fits inside shape.
func (iv Interval) Within(shape []int) bool {
	if len(iv.Lo) != len(shape) || len(iv.Hi) != len(shape) {
		return false
	}
	for d, n := range shape {
		if iv.Lo[d] < 0 || iv.Hi[d] > n || iv.Lo[d] > iv.Hi[d] {
			return false
		}
	}
	return true
}
