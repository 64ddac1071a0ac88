/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kavinbapat/top-songs/internal/analysis"
)

var durationsCmd = &cobra.Command{
	Use:   "durations [from] [to (optional)]",
	Short: "Histograms track durations",
	Long: `Bins track durations, leaving out tracks longer than Q3 + 1.5*(Q3-Q1) + 3 minutes
of the selected years. The bin width is set with --duration-bin.
Year strings look like 'yyyy' or 'yyyy-yyyy'.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printCategory(os.Stdout, queryConfigFromViper(), analysis.Duration, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(durationsCmd)
}

func durationRows(hist analysis.DurationHistogram) (a Analysis) {
	a.results = [][]string{{"Duration", "Tracks"}}
	for _, b := range hist.Bins {
		label := formatDuration(b.Start) + "-" + formatDuration(b.End)
		a.results = append(a.results, []string{label, strconv.Itoa(b.Count)})
	}
	if hist.Included+hist.Excluded > 0 {
		a.summary = boundSummary(hist.Bounds, hist.Excluded)
	}
	return
}

func boundSummary(b analysis.Bounds, excluded int) string {
	return fmt.Sprintf("Left out %d tracks longer than %s (Q1 %s, Q3 %s)",
		excluded, formatDuration(b.Upper), formatDuration(b.Q1), formatDuration(b.Q3))
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds float64) string {
	s := int(math.Round(seconds))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
