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
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kavinbapat/top-songs/internal/analysis"
)

var yearsCmd = &cobra.Command{
	Use:   "years [from] [to (optional)]",
	Short: "Counts tracks per release year",
	Long: `Uses the specified year or year range, or every year in the table when no
years are given. Year strings look like 'yyyy' or 'yyyy-yyyy'.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		if viper.GetBool("bounds") {
			err = printYearBounds(os.Stdout, viper.GetString("data"))
		} else {
			err = printCategory(os.Stdout, queryConfigFromViper(), analysis.ReleaseDate, args)
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(yearsCmd)

	var bounds bool
	yearsCmd.Flags().BoolVar(&bounds, "bounds", false, "Only print the first and last release year")
	viper.BindPFlag("bounds", yearsCmd.Flags().Lookup("bounds"))
}

func printYearBounds(out io.Writer, dataPath string) error {
	table, err := openTable(dataPath)
	if err != nil {
		return err
	}
	full, ok := analysis.FullRange(table)
	if !ok {
		return fmt.Errorf("No track in %s has a usable release date", dataPath)
	}
	fmt.Fprintf(out, "%d %d\n", full.Min, full.Max)
	return nil
}

func yearRows(counts []analysis.YearCount) (a Analysis) {
	a.results = [][]string{{"Year", "Tracks"}}
	for _, c := range counts {
		a.results = append(a.results, []string{strconv.Itoa(c.Year), strconv.Itoa(c.Count)})
	}
	return
}
