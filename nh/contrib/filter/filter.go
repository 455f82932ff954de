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

package filter

import (
	"github.com/ajroetker/go-nhbench/nh"
)

// MinFilter returns a new array holding, for every coordinate, the minimum
// of the input over the (2*sigma+1)^N window centered there.
// Fails with nh.ErrInvalidArgument if sigma < 0 or in is empty.
func MinFilter[T nh.Samples](in *nh.Array[T], sigma int, opts ...Option) (*nh.Array[T], error) {
	if err := validateInput(in, sigma); err != nil {
		return nil, err
	}
	out := in.NewLike()
	if err := MinFilterInto(in, out, sigma, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MinFilterInto is MinFilter writing into a caller-owned out, which must
// have the input's shape and must not share storage with it. Every sample
// of out is overwritten.
func MinFilterInto[T nh.Samples](in, out *nh.Array[T], sigma int, opts ...Option) error {
	return apply(in, out, sigma, ApplyOptions(opts...), extremeOp[T](less[T]))
}

// MaxFilter returns the windowed maximum (grayscale dilation) of in.
func MaxFilter[T nh.Samples](in *nh.Array[T], sigma int, opts ...Option) (*nh.Array[T], error) {
	if err := validateInput(in, sigma); err != nil {
		return nil, err
	}
	out := in.NewLike()
	if err := MaxFilterInto(in, out, sigma, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MaxFilterInto is MaxFilter writing into a caller-owned out.
func MaxFilterInto[T nh.Samples](in, out *nh.Array[T], sigma int, opts ...Option) error {
	return apply(in, out, sigma, ApplyOptions(opts...), extremeOp[T](greater[T]))
}

// MeanFilter returns the windowed arithmetic mean of in. Mirrored samples
// count once per window position they fill.
func MeanFilter[T nh.Floats](in *nh.Array[T], sigma int, opts ...Option) (*nh.Array[T], error) {
	if err := validateInput(in, sigma); err != nil {
		return nil, err
	}
	out := in.NewLike()
	if err := MeanFilterInto(in, out, sigma, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MeanFilterInto is MeanFilter writing into a caller-owned out.
func MeanFilterInto[T nh.Floats](in, out *nh.Array[T], sigma int, opts ...Option) error {
	return apply(in, out, sigma, ApplyOptions(opts...), meanOp[T]())
}

func validateInput[T nh.Samples](in *nh.Array[T], sigma int) error {
	if err := nh.ValidateRadius(sigma); err != nil {
		return err
	}
	if in == nil {
		return nh.InvalidArgumentf("input array is nil")
	}
	return nh.ValidateShape(in.Shape())
}

func apply[T nh.Samples](in, out *nh.Array[T], sigma int, cfg Config, op windowOp[T]) error {
	if err := validateInput(in, sigma); err != nil {
		return err
	}
	if out == nil {
		return nh.InvalidArgumentf("output array is nil")
	}
	if !nh.SameShape(in, out) {
		return nh.InvalidArgumentf("output shape %v does not match input shape %v", out.Shape(), in.Shape())
	}
	if nh.Aliases(in, out) {
		return nh.InvalidArgumentf("output must not share storage with the input")
	}
	if !nh.Representable[T](cfg.Fill) {
		return nh.InvalidArgumentf("fill %v is not representable as %T", cfg.Fill, *new(T))
	}

	w := window[T]{
		in:       in,
		out:      out,
		sigma:    sigma,
		boundary: cfg.Boundary,
		fill:     T(cfg.Fill),
		op:       op,
	}
	if cfg.Pool != nil && in.Len() >= nh.MinParallelElements() {
		w.pool = cfg.Pool
	}

	switch cfg.Strategy {
	case StrategyReference:
		w.reference()
	case StrategyNeighborhood:
		w.neighborhood()
	case StrategySeparable:
		w.separable()
	default:
		return nh.InvalidArgumentf("unknown strategy %d", int(cfg.Strategy))
	}
	return nil
}
