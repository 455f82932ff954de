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

// Package nh provides dense N-dimensional arrays and the out-of-bounds
// machinery used by neighborhood (sliding window) operations.
//
// The core types are Array[T], a row-major strided array of numeric samples,
// and Boundary, which maps an out-of-range index back into the array:
//
//	img, _ := nh.NewArray[float32](64, 64, 32)
//	img.Set(1.5, 3, 4, 5)
//
//	// Reflect an index past the edge back into range
//	x, _ := nh.BoundaryMirror.Remap(-2, img.Dim(0)) // x == 1
//
// # Edge Handling
//
//	BoundaryMirror       - reflect, repeating the edge sample
//	BoundaryMirrorSingle - reflect about the edge sample
//	BoundaryBorder       - repeat edge samples
//	BoundaryPeriodic     - tile/wrap around
//	BoundaryConstant     - out-of-range samples take a fill value
//
// # Environment
//
// Parallel dispatch defaults can be tuned without code changes:
//
//	NH_WORKERS=4       default number of pool workers
//	NH_SEQUENTIAL=1    run every operation on the calling goroutine
//	NH_MIN_PARALLEL=N  element count below which work stays sequential
package nh
