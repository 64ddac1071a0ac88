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

	"github.com/kavinbapat/top-songs/internal/analysis"
)

var tracksLabel string

var tracksCmd = &cobra.Command{
	Use:   "tracks [from] [to (optional)]",
	Short: "Lists tracks by release date and duration",
	Long: `Lists the tracks released in the specified years with their release date and
duration, leaving out duration outliers. Tracks with zero popularity are
skipped unless --include-zero-popularity is set. --label picks the column used
to name each row: track, album or artist.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := printTracks(os.Stdout, queryConfigFromViper(), tracksLabel, args)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tracksCmd)
	tracksCmd.Flags().StringVarP(&tracksLabel, "label", "l", "track", "Column that names each row: track, album or artist")
}

func printTracks(out io.Writer, config QueryConfig, label string, args []string) error {
	category := analysis.ParseCategory(label)
	switch category {
	case analysis.TrackName, analysis.AlbumName, analysis.ArtistName:
	default:
		return fmt.Errorf("Invalid label %q: expected track, album or artist", label)
	}
	return printCategory(out, config, category, args)
}

func trackRows(res analysis.Result, scatter analysis.Scatter) (a Analysis) {
	a.results = [][]string{{res.Label, "Release Date", "Duration", "Popularity"}}
	for _, p := range scatter.Points {
		a.results = append(a.results, []string{
			res.PointLabel(p),
			p.ReleaseDate,
			formatDuration(p.DurationSeconds),
			strconv.Itoa(p.Popularity),
		})
	}
	if len(scatter.Points)+scatter.Excluded > 0 {
		a.summary = boundSummary(scatter.Bounds, scatter.Excluded)
	}
	return
}
