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
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/cpu"
)

// DefaultMinParallel is the element count below which operations stay on
// the calling goroutine.
const DefaultMinParallel = 16384

// SequentialEnv checks if the NH_SEQUENTIAL environment variable is set.
// When set, parallel helpers run everything on the calling goroutine.
// This is useful for testing and for single-threaded timing runs.
func SequentialEnv() bool {
	return envBool("NH_SEQUENTIAL")
}

// DefaultWorkers returns the worker count used for pools created with a
// non-positive size: NH_WORKERS when it parses as a positive integer,
// otherwise GOMAXPROCS.
func DefaultWorkers() int {
	if n, ok := envInt("NH_WORKERS"); ok && n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// MinParallelElements returns the element count below which operations are
// not parallelized, read from NH_MIN_PARALLEL.
func MinParallelElements() int {
	if n, ok := envInt("NH_MIN_PARALLEL"); ok && n >= 0 {
		return n
	}
	return DefaultMinParallel
}

func envBool(key string) bool {
	val := os.Getenv(key)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func envInt(key string) (int, bool) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CPUFeatures returns the SIMD-relevant features of the host CPU, for
// labeling timing reports. Returns nil when none are detected.
func CPUFeatures() []string {
	var feats []string
	add := func(ok bool, name string) {
		if ok {
			feats = append(feats, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE2, "sse2")
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasASIMD, "neon")
		add(cpu.ARM64.HasSVE, "sve")
		add(cpu.ARM64.HasFPHP, "fp16")
	}
	return feats
}
