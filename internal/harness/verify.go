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

package harness

import (
	"context"
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-nhbench/nh"
	"github.com/ajroetker/go-nhbench/nh/contrib/filter"
)

// ErrMismatch reports a strategy whose output differs from the reference.
var ErrMismatch = errors.New("strategy output mismatch")

// meanTolerance bounds the relative difference allowed between mean
// strategies, which sum in different orders.
const meanTolerance = 1e-4

// Verify checks that every case produces the output of its reference
// strategy counterpart on random input. Up to limit cases run at once
// (no limit when limit <= 0); the first failure cancels the rest.
func Verify(ctx context.Context, cases []Case, seed uint64, limit int) error {
	arrays, err := inputs(ctx, cases, seed, limit)
	if err != nil {
		return err
	}
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, c := range cases {
		if c.Strategy == filter.StrategyReference {
			continue
		}
		in := arrays[FormatShape(c.Shape)]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return verifyCase(c, in)
		})
	}
	return g.Wait()
}

func verifyCase(c Case, in *nh.Array[float32]) error {
	ref := c
	ref.Strategy = filter.StrategyReference
	want, got := in.NewLike(), in.NewLike()
	if err := ref.Apply(in, want, nil); err != nil {
		return fmt.Errorf("%s: %w", ref.Name(), err)
	}
	if err := c.Apply(in, got, nil); err != nil {
		return fmt.Errorf("%s: %w", c.Name(), err)
	}
	for i, w := range want.Data() {
		g := got.Data()[i]
		if !matches(c.Op, g, w) {
			return fmt.Errorf("%w: %s at %v: got %v, want %v",
				ErrMismatch, c.Name(), in.CoordOf(i, make([]int, in.NumDims())), g, w)
		}
	}
	return nil
}

func matches(op Op, got, want float32) bool {
	if op != OpMean {
		return got == want
	}
	diff := math.Abs(float64(got) - float64(want))
	return diff <= meanTolerance*math.Max(1, math.Abs(float64(want)))
}
