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
	"iter"
	"slices"

	"github.com/ajroetker/go-nhbench/nh"
)

// fillIndex marks a member that lies outside a constant-boundary source.
const fillIndex = -1

// Neighborhood is a view of the samples around one center of a source
// array. Members are addressed by their position in the shape's offset
// list; out-of-range members are resolved through the boundary policy.
type Neighborhood[T nh.Samples] struct {
	src      *nh.Array[T]
	offsets  [][]int
	deltas   []int // storage offset of each member relative to the center
	reach    []int // largest |offset| along each axis
	boundary nh.Boundary
	fill     T

	center  []int
	index   []int // resolved storage offset per member, or fillIndex
	scratch []int
}

// New creates a neighborhood of shape over src, positioned at the origin.
// fill is returned for members outside src when boundary is
// nh.BoundaryConstant and ignored otherwise.
func New[T nh.Samples](src *nh.Array[T], shape Shape, boundary nh.Boundary, fill T) (*Neighborhood[T], error) {
	offsets, err := shape.Offsets(src.NumDims())
	if err != nil {
		return nil, err
	}
	return newFromOffsets(src, offsets, boundary, fill), nil
}

func newFromOffsets[T nh.Samples](src *nh.Array[T], offsets [][]int, boundary nh.Boundary, fill T) *Neighborhood[T] {
	ndims := src.NumDims()
	n := &Neighborhood[T]{
		src:      src,
		offsets:  offsets,
		deltas:   make([]int, len(offsets)),
		reach:    make([]int, ndims),
		boundary: boundary,
		fill:     fill,
		center:   make([]int, ndims),
		index:    make([]int, len(offsets)),
		scratch:  make([]int, ndims),
	}
	for i, o := range offsets {
		n.deltas[i] = src.Offset(o)
		for d, v := range o {
			n.reach[d] = max(n.reach[d], abs(v))
		}
	}
	n.SetPosition(n.center)
	return n
}

// SetPosition moves the neighborhood to center. Centers away from the
// edges resolve members with precomputed storage deltas; near the edges
// each member is remapped per axis.
func (n *Neighborhood[T]) SetPosition(center []int) {
	copy(n.center, center)

	interior := true
	for d, c := range n.center {
		if c-n.reach[d] < 0 || c+n.reach[d] >= n.src.Dim(d) {
			interior = false
			break
		}
	}

	base := n.src.Offset(n.center)
	if interior {
		for i, delta := range n.deltas {
			n.index[i] = base + delta
		}
		return
	}

	for i, o := range n.offsets {
		n.index[i] = n.resolve(o)
	}
}

func (n *Neighborhood[T]) resolve(o []int) int {
	for d, c := range n.center {
		idx, ok := n.boundary.Remap(c+o[d], n.src.Dim(d))
		if !ok {
			return fillIndex
		}
		n.scratch[d] = idx
	}
	return n.src.Offset(n.scratch)
}

// Center returns the current center. Do not modify the returned slice.
func (n *Neighborhood[T]) Center() []int {
	return n.center
}

// Len returns the number of members.
func (n *Neighborhood[T]) Len() int {
	return len(n.offsets)
}

// Offset returns the offset of member i relative to the center.
func (n *Neighborhood[T]) Offset(i int) []int {
	return n.offsets[i]
}

// Get returns member i.
func (n *Neighborhood[T]) Get(i int) T {
	idx := n.index[i]
	if idx == fillIndex {
		return n.fill
	}
	return n.src.Data()[idx]
}

// Set writes member i through to the source array. Writes to members that
// resolve to the fill value are dropped. Mirrored members alias in-range
// samples, so a write may be observed through several members.
func (n *Neighborhood[T]) Set(i int, v T) {
	idx := n.index[i]
	if idx == fillIndex {
		return
	}
	n.src.Data()[idx] = v
}

// All yields (member, value) pairs for the current position.
func (n *Neighborhood[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range n.index {
			if !yield(i, n.Get(i)) {
				return
			}
		}
	}
}

// Neighborhoods yields a neighborhood of shape for every center in iv,
// in row-major order. The same *Neighborhood is reused and moved with
// SetPosition between yields, so it must not be retained.
func Neighborhoods[T nh.Samples](src *nh.Array[T], iv nh.Interval, shape Shape, boundary nh.Boundary, fill T) (iter.Seq[*Neighborhood[T]], error) {
	if !iv.Within(src.Shape()) {
		return nil, nh.InvalidArgumentf("interval %v..%v outside array %v", iv.Lo, iv.Hi, src.Shape())
	}
	offsets, err := shape.Offsets(src.NumDims())
	if err != nil {
		return nil, err
	}
	return func(yield func(*Neighborhood[T]) bool) {
		n := newFromOffsets(src, offsets, boundary, fill)
		for center := range centers(iv) {
			n.SetPosition(center)
			if !yield(n) {
				return
			}
		}
	}, nil
}

// NeighborhoodsSafe is like Neighborhoods but yields an independent
// *Neighborhood per center, which callers may keep.
func NeighborhoodsSafe[T nh.Samples](src *nh.Array[T], iv nh.Interval, shape Shape, boundary nh.Boundary, fill T) (iter.Seq[*Neighborhood[T]], error) {
	if !iv.Within(src.Shape()) {
		return nil, nh.InvalidArgumentf("interval %v..%v outside array %v", iv.Lo, iv.Hi, src.Shape())
	}
	offsets, err := shape.Offsets(src.NumDims())
	if err != nil {
		return nil, err
	}
	return func(yield func(*Neighborhood[T]) bool) {
		for center := range centers(iv) {
			n := newFromOffsets(src, offsets, boundary, fill)
			n.SetPosition(center)
			if !yield(n) {
				return
			}
		}
	}, nil
}

// centers yields every coordinate of iv. The yielded slice is reused.
func centers(iv nh.Interval) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		coord := slices.Clone(iv.Lo)
		c := nh.NewCursor(iv.Shape(), 0, iv.Len())
		for c.Next() {
			for d, v := range c.Coord() {
				coord[d] = iv.Lo[d] + v
			}
			if !yield(coord) {
				return
			}
		}
	}
}
