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

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/kavinbapat/top-songs/internal/store"
)

var showLimit int

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the normalized table",
	Long: `Prints every track after release dates are normalized and genres are bucketed.
Tracks without a usable release date show "missing".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := printTable(os.Stdout, queryConfigFromViper(), showLimit)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", 0, "number of rows to print, default is all rows")
}

const columnGenreBucket = "Genre Bucket"

func printTable(out io.Writer, config QueryConfig, limit int) error {
	if err := checkFormat(config.Format); err != nil {
		return err
	}
	table, err := openTable(config.DataPath)
	if err != nil {
		return err
	}

	columns := table.Columns()
	bucketColumn := derivedColumnName(columns, columnGenreBucket)
	columns = append(columns, bucketColumn)
	tracks := table.Tracks()
	if limit > 0 && len(tracks) > limit {
		tracks = tracks[:limit]
	}

	if config.Format == formatYAML {
		rows := make([]map[string]string, 0, len(tracks))
		for _, t := range tracks {
			row := make(map[string]string, len(columns))
			for _, col := range columns {
				row[col] = columnValue(t, col, bucketColumn)
			}
			rows = append(rows, row)
		}
		return encodeYAML(out, rows)
	}

	if len(tracks) == 0 {
		fmt.Fprintln(out, "No tracks found.")
		return nil
	}
	tw := tablewriter.NewWriter(out)
	tw.Header(columns)
	for _, t := range tracks {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = columnValue(t, col, bucketColumn)
		}
		if err := tw.Append(row); err != nil {
			return fmt.Errorf("rendering table: %w", err)
		}
	}
	if err := tw.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	fmt.Fprintf(out, "Showing %d of %d tracks\n", len(tracks), table.Len())
	return nil
}

// derivedColumnName returns name, suffixed until it no longer clashes with a
// column already in the input.
func derivedColumnName(columns []string, name string) string {
	taken := make(map[string]bool, len(columns))
	for _, c := range columns {
		taken[c] = true
	}
	for taken[name] {
		name += " (derived)"
	}
	return name
}

func columnValue(t store.Track, column, bucketColumn string) string {
	if column == bucketColumn {
		return string(t.Genre)
	}
	switch column {
	case store.ColumnTrackName:
		return t.TrackName
	case store.ColumnArtistNames:
		return t.ArtistNames
	case store.ColumnAlbumName:
		return t.AlbumName
	case store.ColumnReleaseDate:
		return t.ReleaseDate.String()
	case store.ColumnDuration:
		return strconv.FormatFloat(t.DurationSeconds, 'f', -1, 64)
	case store.ColumnExplicit:
		return strconv.FormatBool(t.Explicit)
	case store.ColumnGenres:
		return t.GenreRaw
	case store.ColumnPopularity:
		return strconv.Itoa(t.Popularity)
	}
	v, _ := t.Extra(column)
	return v
}
