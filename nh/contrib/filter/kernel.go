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

package filter

import (
	"github.com/ajroetker/go-nhbench/nh"
	"github.com/ajroetker/go-nhbench/nh/contrib/workerpool"
)

// reducer accumulates the samples of one window.
type reducer[T nh.Samples] interface {
	reset()
	add(v T)
	result() T
}

// windowOp bundles what each strategy needs to know about an operation.
type windowOp[T nh.Samples] struct {
	// newReducer returns a reducer private to one worker.
	newReducer func() reducer[T]
	// slide computes dst[i] over ext[i : i+width] for a padded line.
	slide func(ext, dst []T, width int, deque []int)
}

func less[T nh.Samples](a, b T) bool    { return a < b }
func greater[T nh.Samples](a, b T) bool { return a > b }

// nanFirst ranks NaN above every number, so a NaN anywhere in a window
// becomes the window's result under every strategy.
func nanFirst[T nh.Samples](better func(a, b T) bool) func(a, b T) bool {
	return func(a, b T) bool {
		if a != a {
			return b == b
		}
		if b != b {
			return false
		}
		return better(a, b)
	}
}

// extremeOp builds a minimum (better = less) or maximum (better = greater).
// Float windows containing NaN yield NaN.
func extremeOp[T nh.Samples](better func(a, b T) bool) windowOp[T] {
	if nh.IsFloat[T]() {
		better = nanFirst(better)
	}
	start := nh.MaxValue[T]()
	if better(start, nh.MinValue[T]()) {
		start = nh.MinValue[T]()
	}
	return windowOp[T]{
		newReducer: func() reducer[T] {
			return &extremeReducer[T]{better: better, start: start}
		},
		slide: func(ext, dst []T, width int, deque []int) {
			slideExtreme(ext, dst, width, deque, better)
		},
	}
}

type extremeReducer[T nh.Samples] struct {
	better func(a, b T) bool
	start  T
	v      T
}

func (r *extremeReducer[T]) reset() { r.v = r.start }

func (r *extremeReducer[T]) add(v T) {
	if r.better(v, r.v) {
		r.v = v
	}
}

func (r *extremeReducer[T]) result() T { return r.v }

func meanOp[T nh.Floats]() windowOp[T] {
	return windowOp[T]{
		newReducer: func() reducer[T] {
			return &meanReducer[T]{}
		},
		slide: func(ext, dst []T, width int, _ []int) {
			slideMean(ext, dst, width)
		},
	}
}

type meanReducer[T nh.Floats] struct {
	sum float64
	n   int
}

func (r *meanReducer[T]) reset()  { r.sum, r.n = 0, 0 }
func (r *meanReducer[T]) add(v T) { r.sum += float64(v); r.n++ }
func (r *meanReducer[T]) result() T {
	return T(r.sum / float64(r.n))
}

// window is one filter invocation.
type window[T nh.Samples] struct {
	in, out  *nh.Array[T]
	sigma    int
	boundary nh.Boundary
	fill     T
	op       windowOp[T]
	pool     *workerpool.Pool // nil runs on the caller
}

// reference scans every window coordinate of every center, remapping each
// axis through the boundary policy.
func (w *window[T]) reference() {
	w.pool.ParallelFor(w.out.Len(), w.referenceRange)
}

func (w *window[T]) referenceRange(start, end int) {
	ndims := w.in.NumDims()
	data := w.in.Data()
	dst := w.out.Data()
	r := w.op.newReducer()
	o := make([]int, ndims)
	probe := make([]int, ndims)

	c := nh.NewCursor(w.in.Shape(), start, end)
	for c.Next() {
		coord := c.Coord()
		r.reset()
		for d := range o {
			o[d] = -w.sigma
		}
		for {
			inside := true
			for d := range ndims {
				idx, ok := w.boundary.Remap(coord[d]+o[d], w.in.Dim(d))
				if !ok {
					inside = false
					break
				}
				probe[d] = idx
			}
			if inside {
				r.add(data[w.in.Offset(probe)])
			} else {
				r.add(w.fill)
			}

			d := ndims - 1
			for ; d >= 0; d-- {
				o[d]++
				if o[d] <= w.sigma {
					break
				}
				o[d] = -w.sigma
			}
			if d < 0 {
				break
			}
		}
		dst[c.Offset()] = r.result()
	}
}
