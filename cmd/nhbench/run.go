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
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-nhbench/internal/harness"
	"github.com/ajroetker/go-nhbench/internal/logger"
)

type runOptions struct {
	matrix matrixFlags
	cfg    harness.Config
	name   string
	outDir string
	noCSV  bool
}

func newRunCmd(a *app) *cobra.Command {
	o := &runOptions{
		matrix: defaultMatrixFlags(harness.DefaultMatrix()),
		cfg:    harness.DefaultConfig(),
		name:   "nhbench",
		outDir: ".",
	}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time every case of the matrix and write a CSV report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, a.log)
		},
	}
	fs := cmd.Flags()
	o.matrix.register(fs)
	fs.IntVar(&o.cfg.Repeats, "repeats", o.cfg.Repeats, "timed runs per case")
	fs.IntVar(&o.cfg.Warmup, "warmup", o.cfg.Warmup, "discarded runs per case")
	fs.IntVar(&o.cfg.Parallelism, "threads", o.cfg.Parallelism,
		"time each case on threads*GOMAXPROCS goroutines (0 runs one goroutine)")
	fs.IntVar(&o.cfg.Workers, "workers", o.cfg.Workers,
		"worker pool size inside each filter (0 sequential, negative for NH_WORKERS or NumCPU)")
	fs.Uint64Var(&o.cfg.Seed, "seed", o.cfg.Seed, "seed for the random input arrays")
	fs.StringVar(&o.name, "name", o.name, "report name prefix")
	fs.StringVarP(&o.outDir, "out", "o", o.outDir, "report directory")
	fs.BoolVar(&o.noCSV, "no-csv", false, "skip the CSV report")
	return cmd
}

func (o *runOptions) run(cmd *cobra.Command, log logger.Logger) error {
	m, err := o.matrix.matrix()
	if err != nil {
		return err
	}
	r, err := harness.NewRunner(o.cfg, log)
	if err != nil {
		return err
	}
	defer r.Close()

	cases := m.Cases()
	log.Info("run", "starting", logger.Fields{
		"cases":   len(cases),
		"repeats": o.cfg.Repeats,
		"threads": o.cfg.Parallelism,
		"workers": o.cfg.Workers,
	})
	results, runErr := r.Run(cmd.Context(), cases)
	if len(results) > 0 {
		if err := harness.WriteTable(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		if !o.noCSV {
			path, err := o.writeReport(results)
			if err != nil {
				return err
			}
			log.Info("run", "report written", logger.Fields{"path": path})
		}
	}
	return runErr
}

func (o *runOptions) writeReport(results []harness.Result) (path string, err error) {
	path = filepath.Join(o.outDir, harness.ReportFileName(o.name, time.Now()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	if err := harness.WriteCSV(f, results); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}
