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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-nhbench/nh"
)

// ramp returns a rows x cols array with value r*cols + c.
func ramp(t testing.TB, rows, cols int) *nh.Array[float32] {
	t.Helper()
	a, err := nh.NewArray[float32](rows, cols)
	require.NoError(t, err)
	for i := range a.Data() {
		a.Data()[i] = float32(i)
	}
	return a
}

func TestNeighborhood_Interior(t *testing.T) {
	src := ramp(t, 5, 5)
	n, err := New(src, RectangleShape{Span: 1}, nh.BoundaryMirror, 0)
	require.NoError(t, err)

	n.SetPosition([]int{2, 2})
	require.Equal(t, 9, n.Len())
	want := []float32{6, 7, 8, 11, 12, 13, 16, 17, 18}
	for i, w := range want {
		assert.Equal(t, w, n.Get(i), "member %d offset %v", i, n.Offset(i))
	}
	assert.Equal(t, []int{2, 2}, n.Center())
}

func TestNeighborhood_MirrorCorner(t *testing.T) {
	src := ramp(t, 3, 3)
	n, err := New(src, RectangleShape{Span: 1}, nh.BoundaryMirror, 0)
	require.NoError(t, err)

	n.SetPosition([]int{0, 0})
	// Rows -1,0,1 mirror to 0,0,1; columns likewise.
	want := []float32{0, 0, 1, 0, 0, 1, 3, 3, 4}
	for i, w := range want {
		assert.Equal(t, w, n.Get(i), "member %d offset %v", i, n.Offset(i))
	}
}

func TestNeighborhood_BoundaryPolicies(t *testing.T) {
	src := ramp(t, 1, 4) // [0 1 2 3]
	line := HorizontalLineShape{Span: 2, Dim: 1}
	tests := []struct {
		boundary nh.Boundary
		want     []float32
	}{
		{nh.BoundaryMirror, []float32{1, 0, 0, 1, 2}},
		{nh.BoundaryMirrorSingle, []float32{2, 1, 0, 1, 2}},
		{nh.BoundaryBorder, []float32{0, 0, 0, 1, 2}},
		{nh.BoundaryPeriodic, []float32{2, 3, 0, 1, 2}},
		{nh.BoundaryConstant, []float32{-9, -9, 0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.boundary.String(), func(t *testing.T) {
			n, err := New(src, line, tt.boundary, -9)
			require.NoError(t, err)
			n.SetPosition([]int{0, 0})
			var got []float32
			for _, v := range n.All() {
				got = append(got, v)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNeighborhood_SetWritesThrough(t *testing.T) {
	src := ramp(t, 3, 3)
	n, err := New(src, RectangleShape{Span: 1}, nh.BoundaryConstant, 0)
	require.NoError(t, err)

	n.SetPosition([]int{0, 0})
	for i := range n.Len() {
		n.Set(i, 100)
	}
	// Only the in-range 2x2 corner is written; fill members are dropped.
	assert.Equal(t, []float32{100, 100, 2, 100, 100, 5, 6, 7, 8}, src.Data())
}

func TestNeighborhoods_SafeMatchesUnsafe(t *testing.T) {
	src := ramp(t, 6, 7)
	shape := DiamondShape{Radius: 2}
	iv := nh.Full(src.Shape())

	unsafeSeq, err := Neighborhoods(src, iv, shape, nh.BoundaryPeriodic, 0)
	require.NoError(t, err)
	safeSeq, err := NeighborhoodsSafe(src, iv, shape, nh.BoundaryPeriodic, 0)
	require.NoError(t, err)

	var sums []float32
	for n := range unsafeSeq {
		var s float32
		for _, v := range n.All() {
			s += v
		}
		sums = append(sums, s)
	}

	var kept []*Neighborhood[float32]
	for n := range safeSeq {
		kept = append(kept, n)
	}
	require.Len(t, kept, src.Len())
	require.Len(t, sums, src.Len())

	for i, n := range kept {
		var s float32
		for _, v := range n.All() {
			s += v
		}
		assert.Equal(t, sums[i], s, "center %v", n.Center())
	}
	// Safe neighborhoods keep their own centers.
	assert.Equal(t, []int{0, 0}, kept[0].Center())
	assert.Equal(t, []int{5, 6}, kept[len(kept)-1].Center())
}

func TestNeighborhoods_EarlyBreak(t *testing.T) {
	src := ramp(t, 4, 4)
	seq, err := Neighborhoods(src, nh.Full(src.Shape()), RectangleShape{Span: 1}, nh.BoundaryBorder, 0)
	require.NoError(t, err)
	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

// Incrementing through every interior window adds (2*span+1)^2 to samples
// deep inside the array and less to samples near the padding.
func TestNeighborhoods_IncrementInterior(t *testing.T) {
	const span = 1
	src, err := nh.NewArray[float32](10+2*span, 10+2*span)
	require.NoError(t, err)

	iv, err := nh.Interior(src.Shape(), span)
	require.NoError(t, err)
	seq, err := Neighborhoods(src, iv, RectangleShape{Span: span, SkipCenter: false}, nh.BoundaryBorder, 0)
	require.NoError(t, err)

	for n := range seq {
		for i := range n.Len() {
			n.Set(i, n.Get(i)+1)
		}
	}

	assert.Equal(t, float32(9), src.At(5, 5))
	assert.Equal(t, float32(1), src.At(0, 0))
	assert.Equal(t, float32(3), src.At(0, 5))
}

func TestNeighborhoods_InvalidInterval(t *testing.T) {
	src := ramp(t, 4, 4)
	iv := nh.Interval{Lo: []int{0, 0}, Hi: []int{5, 4}}
	_, err := Neighborhoods(src, iv, RectangleShape{Span: 1}, nh.BoundaryBorder, 0)
	assert.ErrorIs(t, err, nh.ErrInvalidArgument)
	_, err = NeighborhoodsSafe(src, nh.Full(src.Shape()), RectangleShape{Span: -1}, nh.BoundaryBorder, 0)
	assert.ErrorIs(t, err, nh.ErrInvalidArgument)
}

func TestBufferedNeighborhood(t *testing.T) {
	src := ramp(t, 4, 4)
	b, err := NewBuffered(src, CenteredRectangleShape{Span: []int{1, 1}}, nh.BoundaryBorder, 0)
	require.NoError(t, err)
	require.Equal(t, 9, b.Len())

	b.SetPosition([]int{1, 1})
	assert.Equal(t, []float32{0, 1, 2, 4, 5, 6, 8, 9, 10}, b.Values())
	assert.Equal(t, []int{1, 1}, b.Center())

	// The buffer is a snapshot.
	src.Set(99, 1, 1)
	assert.Equal(t, float32(5), b.Values()[4])
	b.SetPosition([]int{1, 1})
	assert.Equal(t, float32(99), b.Values()[4])
}
