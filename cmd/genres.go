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
	"strings"

	"github.com/spf13/cobra"

	"github.com/kavinbapat/top-songs/internal/analysis"
	"github.com/kavinbapat/top-songs/internal/genre"
)

var genresAll bool

var genresCmd = &cobra.Command{
	Use:   "genres [from] [to (optional)]",
	Short: "Counts tracks per genre bucket",
	Long: `Buckets each track by the first genre listed for its artist and counts the
buckets, most common first. The "other" bucket is always listed last.
Year strings look like 'yyyy' or 'yyyy-yyyy'.`,
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		if genresAll {
			err = printGenreBuckets(os.Stdout, queryConfigFromViper())
		} else {
			err = printCategory(os.Stdout, queryConfigFromViper(), analysis.Genre, args)
		}
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
	genresCmd.Flags().BoolVar(&genresAll, "all", false, "List every bucket present in the table and its genre markers, ignoring years")
}

func printGenreBuckets(out io.Writer, config QueryConfig) error {
	if err := checkFormat(config.Format); err != nil {
		return err
	}
	table, err := openTable(config.DataPath)
	if err != nil {
		return err
	}

	var buckets []bucketMarkers
	for _, b := range analysis.GenreBuckets(table) {
		buckets = append(buckets, bucketMarkers{Genre: b, Markers: genre.Markers(b)})
	}
	if config.Format == formatYAML {
		return encodeYAML(out, buckets)
	}
	for _, b := range buckets {
		if len(b.Markers) == 0 {
			fmt.Fprintln(out, b.Genre)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", b.Genre, strings.Join(b.Markers, ", "))
	}
	return nil
}

// bucketMarkers pairs a bucket with the genre substrings that select it.
type bucketMarkers struct {
	Genre   genre.Bucket `yaml:"genre"`
	Markers []string     `yaml:"markers,omitempty"`
}

func genreRows(counts []analysis.BucketCount) (a Analysis) {
	a.results = [][]string{{"Genre", "Tracks"}}
	for _, c := range counts {
		a.results = append(a.results, []string{string(c.Genre), strconv.Itoa(c.Count)})
	}
	return
}
