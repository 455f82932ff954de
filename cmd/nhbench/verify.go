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

package main

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nhbench/internal/harness"
	"github.com/ajroetker/go-nhbench/internal/logger"
	"github.com/ajroetker/go-nhbench/nh"
	"github.com/ajroetker/go-nhbench/nh/contrib/filter"
)

func newVerifyCmd(a *app) *cobra.Command {
	flags := defaultMatrixFlags(harness.Matrix{
		Ops:        harness.Ops,
		Strategies: filter.Strategies,
		Boundaries: nh.Boundaries,
		Sigmas:     []int{0, 1, 3},
		Shapes:     [][]int{{31}, {23, 17}, {9, 8, 7}},
	})
	var (
		seed uint64 = 1
		jobs        = runtime.GOMAXPROCS(0)
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that every strategy matches the reference strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := flags.matrix()
			if err != nil {
				return err
			}
			cases := m.Cases()
			if err := harness.Verify(cmd.Context(), cases, seed, jobs); err != nil {
				return err
			}
			a.log.Info("verify", "strategies agree", logger.Fields{"cases": len(cases)})
			return nil
		},
	}
	fs := cmd.Flags()
	flags.register(fs)
	fs.Uint64Var(&seed, "seed", seed, "seed for the random input arrays")
	fs.IntVarP(&jobs, "jobs", "j", jobs, "cases checked concurrently (0 for no limit)")
	return cmd
}
