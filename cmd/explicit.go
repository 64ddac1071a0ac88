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
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kavinbapat/top-songs/internal/analysis"
)

var explicitCmd = &cobra.Command{
	Use:   "explicit [from] [to (optional)]",
	Short: "Counts explicit and clean tracks",
	Long:  `Uses the specified year or year range. Year strings look like 'yyyy' or 'yyyy-yyyy'.`,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printCategory(os.Stdout, queryConfigFromViper(), analysis.Explicit, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(explicitCmd)
}

func explicitRows(counts []analysis.LabelCount) (a Analysis) {
	var total int
	for _, c := range counts {
		total += c.Count
	}

	a.results = [][]string{{"", "Tracks", "Share"}}
	for _, c := range counts {
		share := "-"
		if total > 0 {
			share = fmt.Sprintf("%.1f%%", 100*float64(c.Count)/float64(total))
		}
		a.results = append(a.results, []string{c.Label, strconv.Itoa(c.Count), share})
	}
	return
}
