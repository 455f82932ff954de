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

// Cursor walks the coordinates of a shape in row-major order, restricted to
// the flat offset range [start, end). Disjoint ranges let parallel workers
// share one shape without coordination.
//
//	c := nh.NewCursor(img.Shape(), 0, img.Len())
//	for c.Next() {
//	    process(c.Coord(), c.Offset())
//	}
type Cursor struct {
	shape  []int
	coord  []int
	offset int
	end    int
	primed bool
}

// NewCursor returns a cursor positioned before offset start.
// start and end are clamped to the shape's element count.
func NewCursor(shape []int, start, end int) *Cursor {
	n := 1
	for _, s := range shape {
		n *= s
	}
	start = max(0, min(start, n))
	end = max(start, min(end, n))

	c := &Cursor{
		shape:  shape,
		coord:  make([]int, len(shape)),
		offset: start,
		end:    end,
	}
	rem := start
	for d := len(shape) - 1; d >= 0; d-- {
		c.coord[d] = rem % shape[d]
		rem /= shape[d]
	}
	return c
}

// Next advances to the next coordinate and reports whether one exists.
func (c *Cursor) Next() bool {
	if !c.primed {
		c.primed = true
		return c.offset < c.end
	}
	c.offset++
	if c.offset >= c.end {
		return false
	}
	for d := len(c.coord) - 1; d >= 0; d-- {
		c.coord[d]++
		if c.coord[d] < c.shape[d] {
			break
		}
		c.coord[d] = 0
	}
	return true
}

// Coord returns the current coordinate. The slice is reused between calls
// to Next; copy it to retain it.
func (c *Cursor) Coord() []int {
	return c.coord
}

// Offset returns the row-major offset of the current coordinate.
func (c *Cursor) Offset() int {
	return c.offset
}

// Remaining returns how many coordinates Next will still produce.
func (c *Cursor) Remaining() int {
	if !c.primed {
		return c.end - c.offset
	}
	return max(0, c.end-c.offset-1)
}
