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
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-nhbench/nh"
)

// RandomArray returns an array of the given shape filled with samples in
// [0, 255), reproducible for a given seed.
func RandomArray(shape []int, seed uint64) (*nh.Array[float32], error) {
	a, err := nh.NewArray[float32](shape...)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	data := a.Data()
	for i := range data {
		data[i] = rng.Float32() * 255
	}
	return a, nil
}

// inputs generates one random array per distinct shape of cases,
// concurrently, keyed by FormatShape.
func inputs(ctx context.Context, cases []Case, seed uint64, limit int) (map[string]*nh.Array[float32], error) {
	var (
		mu  sync.Mutex
		out = make(map[string]*nh.Array[float32])
	)
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	seen := make(map[string]bool)
	for _, c := range cases {
		key := FormatShape(c.Shape)
		if seen[key] {
			continue
		}
		seen[key] = true
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := RandomArray(c.Shape, seed)
			if err != nil {
				return err
			}
			mu.Lock()
			out[key] = a
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
