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
	"strings"

	"github.com/ajroetker/go-nhbench/nh"
	"github.com/ajroetker/go-nhbench/nh/contrib/workerpool"
)

// Strategy selects how a filter walks each window.
type Strategy int

const (
	// StrategyReference remaps each window coordinate for each center.
	StrategyReference Strategy = iota

	// StrategyNeighborhood walks windows through a reused
	// neighborhood.Neighborhood, which skips remapping for interior centers.
	StrategyNeighborhood

	// StrategySeparable filters one axis at a time with sliding windows.
	StrategySeparable
)

// Strategies lists every strategy in declaration order.
var Strategies = []Strategy{StrategyReference, StrategyNeighborhood, StrategySeparable}

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyReference:
		return "reference"
	case StrategyNeighborhood:
		return "neighborhood"
	case StrategySeparable:
		return "separable"
	default:
		return "unknown"
	}
}

// ParseStrategy returns the strategy with the given name.
// "optimized" is accepted as an alias for separable.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "reference", "naive":
		return StrategyReference, nil
	case "neighborhood", "shape":
		return StrategyNeighborhood, nil
	case "separable", "optimized":
		return StrategySeparable, nil
	default:
		return 0, nh.InvalidArgumentf("unknown strategy %q", name)
	}
}

// Config holds filter settings.
type Config struct {
	Boundary nh.Boundary
	// Fill is converted to the sample type and used for out-of-range
	// samples under nh.BoundaryConstant.
	Fill     float64
	Strategy Strategy
	Pool     *workerpool.Pool
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given:
// mirror boundary, reference strategy, no pool.
func DefaultConfig() Config {
	return Config{
		Boundary: nh.BoundaryMirror,
		Strategy: StrategyReference,
	}
}

// WithBoundary sets the out-of-bounds policy.
func WithBoundary(b nh.Boundary) Option {
	return func(cfg *Config) {
		cfg.Boundary = b
	}
}

// WithFill sets the value of out-of-range samples for nh.BoundaryConstant.
func WithFill(v float64) Option {
	return func(cfg *Config) {
		cfg.Fill = v
	}
}

// WithStrategy selects the window walking strategy.
func WithStrategy(s Strategy) Option {
	return func(cfg *Config) {
		cfg.Strategy = s
	}
}

// WithPool runs large filters on pool. A nil pool keeps work sequential.
func WithPool(pool *workerpool.Pool) Option {
	return func(cfg *Config) {
		cfg.Pool = pool
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
