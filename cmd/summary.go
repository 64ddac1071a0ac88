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
	"strings"

	"github.com/spf13/cobra"

	"github.com/kavinbapat/top-songs/internal/analysis"
	"github.com/kavinbapat/top-songs/internal/store"
)

type SummaryConfig struct {
	QueryConfig
	Types  []string
	Params []map[string]string
}

var summaryCmd = &cobra.Command{
	Use:   "summary <analysis_name...> [from] [to]",
	Short: "Prints several analyses in one report",
	Long: `Prints a text report made of several analyses over the same years.
  <analysis_name> is one or more of: years, genres, explicit, durations, tracks, albums, artists.
  Optional year arguments can be provided at the end (e.g. '1990' or '1990 1999').
  If no years are provided, every year in the table is used.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analysisTypes, yearArgs := splitYearArgs(args)
		if len(analysisTypes) == 0 {
			fmt.Println("Error: No analysis types specified")
			os.Exit(1)
		}

		params, _ := cmd.Flags().GetStringArray("params")
		structuredParams, err := parseParams(params, len(analysisTypes))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		config := SummaryConfig{
			QueryConfig: queryConfigFromViper(),
			Types:       analysisTypes,
			Params:      structuredParams,
		}
		err = printSummary(os.Stdout, config, yearArgs)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().StringArray("params", nil, "Parameters for analyses, matched by index (e.g. --params 'n=20,min=2')")
}

// parseParams turns "k=v,k=v" strings into maps, one per analysis.
func parseParams(params []string, numTypes int) ([]map[string]string, error) {
	if len(params) > 0 && len(params) != numTypes {
		return nil, fmt.Errorf("Error: Number of --params flags (%d) must match number of analyses (%d), or be 0.", len(params), numTypes)
	}

	structured := make([]map[string]string, numTypes)
	for i, v := range params {
		pMap := make(map[string]string)
		if v != "" {
			for _, pair := range strings.Split(v, ",") {
				kv := strings.SplitN(pair, "=", 2)
				if len(kv) == 2 {
					pMap[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
				}
			}
		}
		structured[i] = pMap
	}
	return structured, nil
}

func printSummary(out io.Writer, config SummaryConfig, yearArgs []string) error {
	actions := make([]Analyser, 0, len(config.Types))
	for i, actionName := range config.Types {
		action, err := getActionFromName(actionName, config.Options)
		if err != nil {
			return err
		}
		if i < len(config.Params) && len(config.Params[i]) > 0 {
			if configurable, ok := action.(Configurable); ok {
				if err := configurable.Configure(config.Params[i]); err != nil {
					return fmt.Errorf("configuring %s (index %d): %w", actionName, i, err)
				}
			}
		}
		actions = append(actions, action)
	}

	table, err := openTable(config.DataPath)
	if err != nil {
		return err
	}
	full, _ := analysis.FullRange(table)
	years, err := parseYearRangeFromArgs(yearArgs, full)
	if err != nil {
		return err
	}

	body, err := generateSummaryContent(table, analysis.Query{
		Years:                 years,
		IncludeZeroPopularity: config.IncludeZeroPopularity,
	}, actions)
	if err != nil {
		return err
	}
	fmt.Fprint(out, body)
	return nil
}

func generateSummaryContent(table *store.Table, query analysis.Query, actions []Analyser) (string, error) {
	var out strings.Builder
	fmt.Fprintf(&out, "Song report for %d to %d\n\n", query.Years.Min, query.Years.Max)
	for _, action := range actions {
		result, err := action.GetResults(table, query)
		if err != nil {
			return "", fmt.Errorf("getting results for %s: %w", action.GetName(), err)
		}
		fmt.Fprintf(&out, "## %s\n", action.GetName())
		fmt.Fprintln(&out, result)
	}
	return out.String(), nil
}

func getActionFromName(actionName string, options analysis.Options) (Analyser, error) {
	actionMap := map[string]analysis.Category{
		"years":     analysis.ReleaseDate,
		"genres":    analysis.Genre,
		"explicit":  analysis.Explicit,
		"durations": analysis.Duration,
		"tracks":    analysis.TrackName,
		"albums":    analysis.AlbumName,
		"artists":   analysis.ArtistName,
	}

	category, ok := actionMap[actionName]
	if !ok {
		return nil, fmt.Errorf("Invalid analysis_name: %s", actionName)
	}
	return newCategoryAnalyzer(category, options), nil
}
