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

import "strings"

// Boundary selects how an out-of-range index is mapped back into an array.
// Policies act on each axis independently.
type Boundary int

const (
	// BoundaryMirror reflects indices as if the array were mirrored at its
	// edges, repeating the edge sample: -1 -> 0, size -> size-1.
	BoundaryMirror Boundary = iota

	// BoundaryMirrorSingle reflects about the edge sample without repeating
	// it: -1 -> 1, size -> size-2.
	BoundaryMirrorSingle

	// BoundaryBorder clamps indices to the nearest edge sample.
	BoundaryBorder

	// BoundaryPeriodic wraps indices around, tiling the array.
	BoundaryPeriodic

	// BoundaryConstant leaves out-of-range indices unmapped; callers
	// substitute a fill value for them.
	BoundaryConstant
)

// Boundaries lists every policy in declaration order.
var Boundaries = []Boundary{
	BoundaryMirror,
	BoundaryMirrorSingle,
	BoundaryBorder,
	BoundaryPeriodic,
	BoundaryConstant,
}

// String returns the policy name accepted by ParseBoundary.
func (b Boundary) String() string {
	switch b {
	case BoundaryMirror:
		return "mirror"
	case BoundaryMirrorSingle:
		return "mirror-single"
	case BoundaryBorder:
		return "border"
	case BoundaryPeriodic:
		return "periodic"
	case BoundaryConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// ParseBoundary returns the policy with the given name.
// "clamp" and "wrap" are accepted as aliases for border and periodic.
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mirror", "mirror-double":
		return BoundaryMirror, nil
	case "mirror-single":
		return BoundaryMirrorSingle, nil
	case "border", "clamp":
		return BoundaryBorder, nil
	case "periodic", "wrap":
		return BoundaryPeriodic, nil
	case "constant", "value":
		return BoundaryConstant, nil
	default:
		return 0, InvalidArgumentf("unknown boundary %q", name)
	}
}

// Remap maps index into [0, size). ok is false only for BoundaryConstant
// when index is out of range. In-range indices are returned unchanged by
// every policy.
func (b Boundary) Remap(index, size int) (mapped int, ok bool) {
	if index >= 0 && index < size {
		return index, true
	}
	switch b {
	case BoundaryMirrorSingle:
		return MirrorSingle(index, size), true
	case BoundaryBorder:
		return Clamp(index, size), true
	case BoundaryPeriodic:
		return Wrap(index, size), true
	case BoundaryConstant:
		return index, false
	default:
		return Mirror(index, size), true
	}
}

// Mirror returns the mirrored index for out-of-bounds coordinates.
// Negative indices map as idx -> -idx-1 and indices past the end as
// idx -> 2*size-idx-1, repeatedly, so windows larger than the array still
// land in range. The repetition has period 2*size and is folded in O(1).
func Mirror(index, size int) int {
	if size <= 0 {
		return 0
	}
	if index < 0 {
		index = -index - 1
	}
	if index >= size {
		period := 2 * size
		index %= period
		if index >= size {
			index = period - index - 1
		}
	}
	return index
}

// MirrorSingle reflects about the edge samples without duplicating them.
// The reflection has period 2*size-2; a single-element axis maps to 0.
func MirrorSingle(index, size int) int {
	if size <= 1 {
		return 0
	}
	if index < 0 {
		index = -index
	}
	if index >= size {
		period := 2*size - 2
		index %= period
		if index >= size {
			index = period - index
		}
	}
	return index
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Wrap returns index wrapped to [0, size) using modulo.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index %= size
	if index < 0 {
		index += size
	}
	return index
}
