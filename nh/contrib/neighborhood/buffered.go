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

import "github.com/ajroetker/go-nhbench/nh"

// BufferedNeighborhood copies the members of a neighborhood into a
// contiguous buffer whenever it is positioned. Reading the buffer costs no
// boundary resolution; the snapshot does not see later writes to the source.
type BufferedNeighborhood[T nh.Samples] struct {
	view   *Neighborhood[T]
	values []T
}

// NewBuffered creates a buffered neighborhood of shape over src, positioned
// at the origin.
func NewBuffered[T nh.Samples](src *nh.Array[T], shape Shape, boundary nh.Boundary, fill T) (*BufferedNeighborhood[T], error) {
	view, err := New(src, shape, boundary, fill)
	if err != nil {
		return nil, err
	}
	b := &BufferedNeighborhood[T]{
		view:   view,
		values: make([]T, view.Len()),
	}
	b.refresh()
	return b, nil
}

// SetPosition moves to center and refills the buffer.
func (b *BufferedNeighborhood[T]) SetPosition(center []int) {
	b.view.SetPosition(center)
	b.refresh()
}

func (b *BufferedNeighborhood[T]) refresh() {
	for i := range b.values {
		b.values[i] = b.view.Get(i)
	}
}

// Center returns the current center.
func (b *BufferedNeighborhood[T]) Center() []int {
	return b.view.Center()
}

// Len returns the number of members.
func (b *BufferedNeighborhood[T]) Len() int {
	return len(b.values)
}

// Values returns the buffered members in offset order. The slice is
// overwritten by the next SetPosition.
func (b *BufferedNeighborhood[T]) Values() []T {
	return b.values
}
