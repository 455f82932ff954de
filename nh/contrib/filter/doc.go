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

// Package filter provides rectangular sliding-window filters over
// N-dimensional arrays.
//
// For every coordinate c the window is [c-sigma, c+sigma] along each axis;
// samples past the edges are resolved by a boundary policy (mirror by
// default, which repeats the edge sample):
//
//	in, _ := nh.FromSlice([]float32{5, 3, 8, 1, 9}, 5)
//	out, _ := filter.MinFilter(in, 1)
//	// out.Data() == [3 3 1 1 1]
//
// # Strategies
//
// All strategies produce identical output and differ only in how they walk
// the window:
//
//	StrategyReference     remap every window coordinate per center
//	StrategyNeighborhood  reuse a neighborhood.Neighborhood view per worker
//	StrategySeparable     one sliding pass per axis (van Herk style deque)
//
// The separable strategy relies on the window being a box and the boundary
// acting on each axis independently, so its cost per sample is O(N) instead
// of O((2*sigma+1)^N).
//
// # Parallelism
//
// Passing WithPool splits the output into disjoint ranges; workers only
// read the input and write their own range. Arrays smaller than
// nh.MinParallelElements() stay on the calling goroutine.
package filter
