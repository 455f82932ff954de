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
	"math"
	"reflect"
)

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Samples is a constraint for all types that can be stored in an Array.
// Every member has a total order under < (NaN aside) and finite extremes.
type Samples interface {
	Floats | Integers
}

// MaxValue returns the largest finite value representable by T.
// Minimum filters start from it, so any sample in a window replaces it.
func MaxValue[T Samples]() T {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		v := float64(math.MaxFloat32)
		return T(v)
	case reflect.Float64:
		v := math.MaxFloat64
		return T(v)
	case reflect.Int8:
		v := int64(math.MaxInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MaxInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MaxInt32)
		return T(v)
	case reflect.Int64:
		v := int64(math.MaxInt64)
		return T(v)
	case reflect.Uint8:
		v := uint64(math.MaxUint8)
		return T(v)
	case reflect.Uint16:
		v := uint64(math.MaxUint16)
		return T(v)
	case reflect.Uint32:
		v := uint64(math.MaxUint32)
		return T(v)
	default:
		v := uint64(math.MaxUint64)
		return T(v)
	}
}

// MinValue returns the smallest finite value representable by T.
// For floats this is the negated maximum, not the smallest positive value.
func MinValue[T Samples]() T {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		v := -float64(math.MaxFloat32)
		return T(v)
	case reflect.Float64:
		v := -math.MaxFloat64
		return T(v)
	case reflect.Int8:
		v := int64(math.MinInt8)
		return T(v)
	case reflect.Int16:
		v := int64(math.MinInt16)
		return T(v)
	case reflect.Int32:
		v := int64(math.MinInt32)
		return T(v)
	case reflect.Int64:
		v := int64(math.MinInt64)
		return T(v)
	default:
		// All unsigned kinds bottom out at zero.
		var zero T
		return zero
	}
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Samples]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// Representable reports whether v converts to T without loss: NaN and
// infinities for floats, in-range values for float32, and in-range whole
// numbers for integers.
func Representable[T Samples](v float64) bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float64:
		return true
	case reflect.Float32:
		return math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) <= math.MaxFloat32
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) {
		return false
	}
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Int64:
		// float64(MaxInt64) rounds up to 2^63, which does not fit.
		return v >= math.MinInt64 && v < 1<<63
	case reflect.Uint64:
		return v >= 0 && v < 1<<64
	default:
		return v >= float64(MinValue[T]()) && v <= float64(MaxValue[T]())
	}
}
