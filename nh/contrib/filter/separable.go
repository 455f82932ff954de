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
	"math"

	"github.com/ajroetker/go-nhbench/nh"
)

// maxLineBatch caps the number of lines a worker claims at once.
const maxLineBatch = 64

// separable applies the 1-D window along each axis in turn. A box window
// with a per-axis boundary is the product of its axis windows, so the
// composed passes read exactly the samples the reference scan reads.
//
// Passes ping-pong between out and one scratch array, ordered so the last
// pass lands in out.
func (w *window[T]) separable() {
	ndims := w.in.NumDims()
	var scratch *nh.Array[T]
	if ndims > 1 {
		scratch = w.out.NewLike()
	}

	src := w.in
	for d := range ndims {
		dst := w.out
		if (ndims-1-d)%2 == 1 {
			dst = scratch
		}
		w.separablePass(src, dst, d)
		src = dst
	}
}

// separablePass filters every line of src along axis into dst.
func (w *window[T]) separablePass(src, dst *nh.Array[T], axis int) {
	n := src.Dim(axis)
	stride := src.Stride(axis)
	width := 2*w.sigma + 1
	numLines := src.Len() / n

	// remap[j] is the source index for padded position j, i.e. line index
	// j-sigma; -1 marks a fill sample.
	remap := make([]int, n+2*w.sigma)
	for j := range remap {
		idx, ok := w.boundary.Remap(j-w.sigma, n)
		if !ok {
			idx = -1
		}
		remap[j] = idx
	}

	// Aim for a few batches per worker so short axes still spread out.
	batch := max(1, min(maxLineBatch, numLines/(4*w.pool.NumWorkers())))

	in := src.Data()
	out := dst.Data()
	w.pool.ParallelForBatched(numLines, batch, func(start, end int) {
		ext := make([]T, len(remap))
		line := make([]T, n)
		deque := make([]int, len(remap))
		for li := start; li < end; li++ {
			base := (li/stride)*n*stride + li%stride
			for j, idx := range remap {
				if idx < 0 {
					ext[j] = w.fill
				} else {
					ext[j] = in[base+idx*stride]
				}
			}
			w.op.slide(ext, line, width, deque)
			for i, v := range line {
				out[base+i*stride] = v
			}
		}
	})
}

// slideExtreme sets dst[i] to the best of ext[i : i+width] under better,
// keeping a deque of candidate indices whose values are strictly ordered.
// Each index enters and leaves the deque once.
func slideExtreme[T nh.Samples](ext, dst []T, width int, deque []int, better func(a, b T) bool) {
	head, tail := 0, 0
	for j, v := range ext {
		for tail > head && !better(ext[deque[tail-1]], v) {
			tail--
		}
		deque[tail] = j
		tail++

		i := j - width + 1
		if i < 0 {
			continue
		}
		if deque[head] < i {
			head++
		}
		dst[i] = ext[deque[head]]
	}
}

// slideMean sets dst[i] to the mean of ext[i : i+width] with a running sum
// of the finite samples. Non-finite samples are counted instead of summed so
// they leave the window cleanly; the result follows float addition: NaN, or
// +Inf together with -Inf, gives NaN, a lone infinity gives itself.
func slideMean[T nh.Floats](ext, dst []T, width int) {
	var (
		sum             float64
		nan, pinf, ninf int
	)
	count := func(v float64, delta int) {
		switch {
		case math.IsNaN(v):
			nan += delta
		case math.IsInf(v, 1):
			pinf += delta
		case math.IsInf(v, -1):
			ninf += delta
		default:
			sum += float64(delta) * v
		}
	}
	for j, v := range ext {
		count(float64(v), 1)
		i := j - width + 1
		if i < 0 {
			continue
		}
		switch {
		case nan > 0 || (pinf > 0 && ninf > 0):
			dst[i] = T(math.NaN())
		case pinf > 0:
			dst[i] = T(math.Inf(1))
		case ninf > 0:
			dst[i] = T(math.Inf(-1))
		default:
			dst[i] = T(sum / float64(width))
		}
		count(float64(ext[i]), -1)
	}
}
