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
	"fmt"
	"runtime"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nhbench/nh"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the platform and parallelism defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			features := strings.Join(nh.CPUFeatures(), " ")
			if features == "" {
				features = "none detected"
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "go\t%s\n", runtime.Version())
			fmt.Fprintf(tw, "platform\t%s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(tw, "cpus\t%d\n", runtime.NumCPU())
			fmt.Fprintf(tw, "cpu features\t%s\n", features)
			fmt.Fprintf(tw, "workers\t%d\n", nh.DefaultWorkers())
			fmt.Fprintf(tw, "min parallel\t%d\n", nh.MinParallelElements())
			fmt.Fprintf(tw, "sequential\t%t\n", nh.SequentialEnv())
			return tw.Flush()
		},
	}
}
