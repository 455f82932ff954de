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
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned (wrapped) for bad radii, degenerate shapes
// and mismatched arrays. Test for it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentf formats an error that wraps ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// ValidateShape checks that shape has at least one dimension and that every
// dimension holds at least one element.
func ValidateShape(shape []int) error {
	if len(shape) == 0 {
		return InvalidArgumentf("shape must have at least one dimension")
	}
	for d, n := range shape {
		if n <= 0 {
			return InvalidArgumentf("dimension %d has size %d, want > 0", d, n)
		}
	}
	return nil
}

// ValidateRadius checks a window radius.
func ValidateRadius(radius int) error {
	if radius < 0 {
		return InvalidArgumentf("radius must be >= 0: %d", radius)
	}
	return nil
}
