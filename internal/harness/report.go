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
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"
)

var csvHeader = []string{
	"name", "op", "strategy", "boundary", "sigma", "shape",
	"samples", "mean_ns", "stddev_ns", "min_ns", "max_ns", "median_ns",
}

// ReportFileName returns "<name>_<timestamp>.csv".
func ReportFileName(name string, t time.Time) string {
	return fmt.Sprintf("%s_%s.csv", name, t.Format("2006_01_02_15_04"))
}

// WriteCSV writes one row per result.
func WriteCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, res := range results {
		c, s := res.Case, res.Summary
		row := []string{
			c.Name(),
			string(c.Op),
			c.Strategy.String(),
			c.Boundary.String(),
			strconv.Itoa(c.Sigma),
			FormatShape(c.Shape),
			strconv.Itoa(s.N),
			formatNs(s.Mean),
			formatNs(s.StdDev),
			formatNs(s.Min),
			formatNs(s.Max),
			formatNs(s.Median),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable writes an aligned, human-readable summary.
func WriteTable(w io.Writer, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "case\tmean\tstddev\tmin\t")
	for _, res := range results {
		s := res.Summary
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", res.Case.Name(),
			duration(s.Mean), duration(s.StdDev), duration(s.Min))
	}
	return tw.Flush()
}

func formatNs(ns float64) string {
	return strconv.FormatFloat(ns, 'f', 1, 64)
}

func duration(ns float64) string {
	return time.Duration(ns).Round(100 * time.Nanosecond).String()
}
