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
	"runtime"
	"testing"
)

func TestDefaultWorkers(t *testing.T) {
	t.Setenv("NH_WORKERS", "")
	if got := DefaultWorkers(); got != runtime.GOMAXPROCS(0) {
		t.Errorf("DefaultWorkers: got %d, want GOMAXPROCS %d", got, runtime.GOMAXPROCS(0))
	}

	t.Setenv("NH_WORKERS", "3")
	if got := DefaultWorkers(); got != 3 {
		t.Errorf("DefaultWorkers with NH_WORKERS=3: got %d", got)
	}

	t.Setenv("NH_WORKERS", "lots")
	if got := DefaultWorkers(); got != runtime.GOMAXPROCS(0) {
		t.Errorf("DefaultWorkers with bad value: got %d", got)
	}
}

func TestSequentialEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("NH_SEQUENTIAL", tt.val)
		if got := SequentialEnv(); got != tt.want {
			t.Errorf("SequentialEnv(%q): got %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestMinParallelElements(t *testing.T) {
	t.Setenv("NH_MIN_PARALLEL", "")
	if got := MinParallelElements(); got != DefaultMinParallel {
		t.Errorf("MinParallelElements: got %d, want %d", got, DefaultMinParallel)
	}
	t.Setenv("NH_MIN_PARALLEL", "0")
	if got := MinParallelElements(); got != 0 {
		t.Errorf("MinParallelElements with 0: got %d", got)
	}
}

func TestCPUFeatures(t *testing.T) {
	feats := CPUFeatures()
	if runtime.GOARCH == "amd64" && len(feats) == 0 {
		t.Error("amd64 always has sse2")
	}
	for _, f := range feats {
		if f == "" {
			t.Error("empty feature name")
		}
	}
}

func TestMaxMinValue(t *testing.T) {
	if got := MaxValue[float32](); got != math.MaxFloat32 {
		t.Errorf("MaxValue[float32]: got %v", got)
	}
	if got := MinValue[float64](); got != -math.MaxFloat64 {
		t.Errorf("MinValue[float64]: got %v", got)
	}
	if got := MaxValue[uint8](); got != 255 {
		t.Errorf("MaxValue[uint8]: got %v", got)
	}
	if got := MinValue[uint32](); got != 0 {
		t.Errorf("MinValue[uint32]: got %v", got)
	}
	if got := MaxValue[int16](); got != math.MaxInt16 {
		t.Errorf("MaxValue[int16]: got %v", got)
	}
	if got := MinValue[int8](); got != math.MinInt8 {
		t.Errorf("MinValue[int8]: got %v", got)
	}
	if got := MaxValue[uint64](); got != math.MaxUint64 {
		t.Errorf("MaxValue[uint64]: got %v", got)
	}

	type depth uint16
	if got := MaxValue[depth](); got != math.MaxUint16 {
		t.Errorf("MaxValue[depth]: got %v", got)
	}
}

func TestIsFloat(t *testing.T) {
	if !IsFloat[float32]() || !IsFloat[float64]() {
		t.Error("IsFloat: float types not reported")
	}
	if IsFloat[uint8]() || IsFloat[int64]() {
		t.Error("IsFloat: integer type reported as float")
	}
}

func TestRepresentable(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"uint8 0", Representable[uint8](0), true},
		{"uint8 255", Representable[uint8](255), true},
		{"uint8 -3", Representable[uint8](-3), false},
		{"uint8 300", Representable[uint8](300), false},
		{"uint8 2.5", Representable[uint8](2.5), false},
		{"uint8 NaN", Representable[uint8](math.NaN()), false},
		{"int8 -128", Representable[int8](-128), true},
		{"int8 128", Representable[int8](128), false},
		{"int64 -2^63", Representable[int64](math.MinInt64), true},
		{"int64 2^63", Representable[int64](1 << 63), false},
		{"uint64 2^63", Representable[uint64](1 << 63), true},
		{"uint64 2^64", Representable[uint64](1 << 64), false},
		{"uint32 +Inf", Representable[uint32](math.Inf(1)), false},
		{"float32 NaN", Representable[float32](math.NaN()), true},
		{"float32 -Inf", Representable[float32](math.Inf(-1)), true},
		{"float32 1e39", Representable[float32](1e39), false},
		{"float32 2.5", Representable[float32](2.5), true},
		{"float64 1e300", Representable[float64](1e300), true},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("Representable %s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}
