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

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nhbench/internal/harness"
)

func newCasesCmd() *cobra.Command {
	flags := defaultMatrixFlags(harness.DefaultMatrix())
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "List the cases a run would time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := flags.matrix()
			if err != nil {
				return err
			}
			for _, c := range m.Cases() {
				fmt.Fprintln(cmd.OutOrStdout(), c.Name())
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}
