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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-nhbench/nh"
	"github.com/ajroetker/go-nhbench/nh/contrib/filter"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"100x100", []int{100, 100}, false},
		{"64X64x32", []int{64, 64, 32}, false},
		{" 7 ", []int{7}, false},
		{"10x0", nil, true},
		{"10xa", nil, true},
		{"", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShape(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, nh.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseShape(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParseOp(t *testing.T) {
	op, err := ParseOp(" MEAN")
	require.NoError(t, err)
	assert.Equal(t, OpMean, op)

	_, err = ParseOp("median")
	assert.ErrorIs(t, err, nh.ErrInvalidArgument)
}

func TestMatrixCases(t *testing.T) {
	m := Matrix{
		Ops:        []Op{OpMin, OpMin},
		Strategies: []filter.Strategy{filter.StrategyReference, filter.StrategySeparable},
		Boundaries: []nh.Boundary{nh.BoundaryMirror},
		Sigmas:     []int{1, 2},
		Shapes:     [][]int{{8, 8}, {8, 8}, {16}},
	}
	require.NoError(t, m.Validate())

	cases := m.Cases()
	require.Len(t, cases, 2*2*2)
	assert.Equal(t, "min/reference/mirror/sigma=1/8x8", cases[0].Name())
	assert.Equal(t, "min/separable/mirror/sigma=1/8x8", cases[1].Name())
	assert.Equal(t, "min/reference/mirror/sigma=2/8x8", cases[2].Name())
	assert.Equal(t, "min/separable/mirror/sigma=2/16", cases[7].Name())
}

func TestMatrixValidate(t *testing.T) {
	base := DefaultMatrix()
	require.NoError(t, base.Validate())
	assert.Len(t, base.Cases(), len(filter.Strategies)*3)

	broken := []func(m *Matrix){
		func(m *Matrix) { m.Ops = nil },
		func(m *Matrix) { m.Strategies = nil },
		func(m *Matrix) { m.Boundaries = nil },
		func(m *Matrix) { m.Sigmas = nil },
		func(m *Matrix) { m.Shapes = nil },
		func(m *Matrix) { m.Sigmas = []int{-1} },
		func(m *Matrix) { m.Shapes = [][]int{{4, 0}} },
	}
	for i, mutate := range broken {
		m := DefaultMatrix()
		mutate(&m)
		assert.ErrorIs(t, m.Validate(), nh.ErrInvalidArgument, "mutation %d", i)
	}
}

func TestCaseApply(t *testing.T) {
	in, err := nh.FromSlice([]float32{5, 3, 8, 1, 9}, 5)
	require.NoError(t, err)
	out := in.NewLike()

	tests := []struct {
		op   Op
		want []float32
	}{
		{OpMin, []float32{3, 3, 1, 1, 1}},
		{OpMax, []float32{5, 8, 8, 9, 9}},
	}
	for _, tt := range tests {
		for _, s := range filter.Strategies {
			c := Case{Op: tt.op, Strategy: s, Boundary: nh.BoundaryMirror, Sigma: 1, Shape: in.Shape()}
			require.NoError(t, c.Apply(in, out, nil))
			assert.Equal(t, tt.want, out.Data(), c.Name())
		}
	}

	bad := Case{Op: "median", Sigma: 1, Shape: in.Shape()}
	assert.ErrorIs(t, bad.Apply(in, out, nil), nh.ErrInvalidArgument)
}

func TestRandomArray(t *testing.T) {
	a, err := RandomArray([]int{4, 5}, 7)
	require.NoError(t, err)
	b, err := RandomArray([]int{4, 5}, 7)
	require.NoError(t, err)
	c, err := RandomArray([]int{4, 5}, 8)
	require.NoError(t, err)

	assert.Equal(t, a.Data(), b.Data())
	assert.NotEqual(t, a.Data(), c.Data())
	for _, v := range a.Data() {
		assert.True(t, v >= 0 && v < 255, "sample %v out of range", v)
	}

	_, err = RandomArray([]int{0}, 1)
	assert.ErrorIs(t, err, nh.ErrInvalidArgument)
}
