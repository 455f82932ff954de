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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nhbench/nh/contrib/neighborhood"
)

func newShapesCmd() *cobra.Command {
	var (
		span  = 3
		ndims = 2
		names = neighborhood.ShapeNames
	)
	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "List neighborhood shapes and their member counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "name\tshape\tmembers")
			for _, name := range names {
				s, err := neighborhood.NewShape(name, span, ndims)
				if err != nil {
					return err
				}
				offsets, err := s.Offsets(ndims)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\n", name, s, len(offsets))
			}
			return tw.Flush()
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&span, "span", span, "span or radius of every shape")
	fs.IntVar(&ndims, "dims", ndims, "number of axes")
	fs.StringSliceVar(&names, "names", names, "shape names")
	return cmd
}
