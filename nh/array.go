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

import (
	"slices"
	"unsafe"
)

// Array is a dense N-dimensional array stored in row-major order.
// Dimension 0 varies slowest; the last dimension is contiguous in memory.
// The shape is fixed at creation.
type Array[T Samples] struct {
	data    []T
	shape   []int
	strides []int // elements to skip per unit step along each dimension
}

// NewArray creates a zero-filled array with the given shape.
// Every dimension must be > 0.
func NewArray[T Samples](shape ...int) (*Array[T], error) {
	if err := ValidateShape(shape); err != nil {
		return nil, err
	}
	shape = slices.Clone(shape)
	strides, n := rowMajorStrides(shape)
	return &Array[T]{
		data:    make([]T, n),
		shape:   shape,
		strides: strides,
	}, nil
}

// FromSlice wraps data as an array with the given shape without copying.
// len(data) must equal the product of the shape.
func FromSlice[T Samples](data []T, shape ...int) (*Array[T], error) {
	if err := ValidateShape(shape); err != nil {
		return nil, err
	}
	shape = slices.Clone(shape)
	strides, n := rowMajorStrides(shape)
	if len(data) != n {
		return nil, InvalidArgumentf("data has %d elements, shape %v needs %d", len(data), shape, n)
	}
	return &Array[T]{
		data:    data,
		shape:   shape,
		strides: strides,
	}, nil
}

// MustArray is like NewArray but panics on an invalid shape.
// Intended for tests and fixed-size setups.
func MustArray[T Samples](shape ...int) *Array[T] {
	a, err := NewArray[T](shape...)
	if err != nil {
		panic(err)
	}
	return a
}

func rowMajorStrides(shape []int) ([]int, int) {
	strides := make([]int, len(shape))
	n := 1
	for d := len(shape) - 1; d >= 0; d-- {
		strides[d] = n
		n *= shape[d]
	}
	return strides, n
}

// NumDims returns the number of dimensions.
func (a *Array[T]) NumDims() int {
	return len(a.shape)
}

// Shape returns a copy of the per-dimension sizes.
func (a *Array[T]) Shape() []int {
	return slices.Clone(a.shape)
}

// Dim returns the size of dimension d.
func (a *Array[T]) Dim(d int) int {
	return a.shape[d]
}

// Stride returns the storage distance between neighbors along dimension d.
func (a *Array[T]) Stride(d int) int {
	return a.strides[d]
}

// Len returns the total number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Data returns the backing slice in row-major order.
func (a *Array[T]) Data() []T {
	return a.data
}

// Contains reports whether coord lies inside the array.
func (a *Array[T]) Contains(coord []int) bool {
	if len(coord) != len(a.shape) {
		return false
	}
	for d, c := range coord {
		if c < 0 || c >= a.shape[d] {
			return false
		}
	}
	return true
}

// Offset maps an in-range coordinate to its storage offset.
// The coordinate is not bounds checked.
func (a *Array[T]) Offset(coord []int) int {
	off := 0
	for d, c := range coord {
		off += c * a.strides[d]
	}
	return off
}

// CoordOf writes the coordinate of storage offset off into dst, which must
// have NumDims elements, and returns it.
func (a *Array[T]) CoordOf(off int, dst []int) []int {
	for d, s := range a.strides {
		dst[d] = off / s
		off -= dst[d] * s
	}
	return dst
}

// At returns the sample at coord.
// Out-of-range coordinates return the zero value.
func (a *Array[T]) At(coord ...int) T {
	if !a.Contains(coord) {
		var zero T
		return zero
	}
	return a.data[a.Offset(coord)]
}

// Set stores value at coord. Out-of-range coordinates are ignored.
func (a *Array[T]) Set(value T, coord ...int) {
	if !a.Contains(coord) {
		return
	}
	a.data[a.Offset(coord)] = value
}

// SameShape reports whether both arrays have identical shapes.
func SameShape[T, U Samples](a *Array[T], b *Array[U]) bool {
	return slices.Equal(a.shape, b.shape)
}

// Aliases reports whether a and b share any backing storage.
func Aliases[T Samples](a, b *Array[T]) bool {
	if len(a.data) == 0 || len(b.data) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a.data)))
	aEnd := aStart + uintptr(len(a.data))*size
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
	bEnd := bStart + uintptr(len(b.data))*size
	return aStart < bEnd && bStart < aEnd
}

// NewLike creates a zero-filled array with the same shape as a.
func (a *Array[T]) NewLike() *Array[T] {
	return &Array[T]{
		data:    make([]T, len(a.data)),
		shape:   slices.Clone(a.shape),
		strides: slices.Clone(a.strides),
	}
}

// Clone creates a deep copy of the array.
func (a *Array[T]) Clone() *Array[T] {
	clone := a.NewLike()
	copy(clone.data, a.data)
	return clone
}

// Fill sets all samples to value.
func (a *Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}
