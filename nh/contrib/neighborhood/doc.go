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

// Package neighborhood provides neighborhood shapes and views over
// nh.Array values.
//
// A Shape describes which offsets around a center belong to a neighborhood.
// A Neighborhood binds a shape to a source array and an out-of-bounds
// policy, and gives indexed access to the samples around one center:
//
//	src, _ := nh.NewArray[float32](100, 100)
//	shape := neighborhood.RectangleShape{Span: 3}
//
//	all, _ := neighborhood.Neighborhoods(src, nh.Full(src.Shape()), shape, nh.BoundaryBorder, 0)
//	for n := range all {
//	    for i := range n.Len() {
//	        n.Set(i, n.Get(i)+1)
//	    }
//	}
//
// # Safe and unsafe iteration
//
// Neighborhoods yields the same *Neighborhood for every center, moved with
// SetPosition; callers must not keep it past the loop body.
// NeighborhoodsSafe allocates a fresh view per center.
//
// # Shapes
//
//	RectangleShape          [-span, span]^N
//	CenteredRectangleShape  per-axis spans
//	DiamondShape            L1 ball
//	DiamondTipsShape        the 2N tips of a diamond
//	HorizontalLineShape     a line along one axis
//	HyperSphereShape        Euclidean ball
//	PairOfPointsShape       the center and one other point
//	PeriodicLineShape       points spaced by an increment vector
package neighborhood
