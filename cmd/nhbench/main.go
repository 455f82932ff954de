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

// nhbench times sliding-window neighborhood filters over a matrix of
// operations, strategies, boundaries, window radii and array shapes.
//
// Usage:
//
//	nhbench run --sigmas 1,2,4 --shapes 100x100,256x256 --repeats 5
//	nhbench verify --boundaries mirror,periodic
//	nhbench cases --strategies separable
//	nhbench shapes --span 3 --dims 3
//	nhbench info
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nhbench/internal/logger"
)

type app struct {
	logFormat string
	logLevel  string
	log       logger.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		if a.log != nil {
			a.log.Error("nhbench", err, nil)
		} else {
			fmt.Fprintln(os.Stderr, "nhbench:", err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "nhbench",
		Short:         "Benchmark sliding-window neighborhood filters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			log, err := logger.New(a.logFormat, a.logLevel)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "console", "log format: console or json")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "minimum log level")

	root.AddCommand(
		newRunCmd(a),
		newVerifyCmd(a),
		newCasesCmd(),
		newShapesCmd(),
		newInfoCmd(),
	)
	return root
}
