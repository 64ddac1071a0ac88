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
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/kavinbapat/top-songs/internal/analysis"
	"github.com/kavinbapat/top-songs/internal/store"
)

type Analysis struct {
	results      [][]string
	summary      string
	BodyOverride string
}

type AnalyserConfig struct {
	// Number of results to return, default is all results.
	NumToReturn int

	// Only return results with more tracks than this. Default is all results.
	FilterThreshold int64
}

type Analyser interface {
	GetResults(table *store.Table, query analysis.Query) (Analysis, error)

	GetName() string
}

type Configurable interface {
	Configure(params map[string]string) error
}

func (a Analysis) String() string {
	if a.BodyOverride != "" {
		return a.BodyOverride + "\n"
	}

	out := new(bytes.Buffer)
	if len(a.results) <= 1 {
		fmt.Fprintln(out, "No tracks found.")
	} else {
		table := tablewriter.NewWriter(out)
		table.Header(a.results[0])
		for _, row := range a.results[1:] {
			if err := table.Append(row); err != nil {
				return fmt.Sprintf("Error rendering table: %v", err)
			}
		}
		if err := table.Render(); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	fmt.Fprintf(out, "%s\n", a.summary)
	return out.String()
}

// categoryAnalyzer renders one category of analysis.Run as a text table.
type categoryAnalyzer struct {
	name     string
	category analysis.Category
	Config   AnalyserConfig
	Options  analysis.Options
}

func newCategoryAnalyzer(category analysis.Category, options analysis.Options) *categoryAnalyzer {
	return &categoryAnalyzer{
		name:     categoryTitles[category],
		category: category,
		Options:  options,
	}
}

var categoryTitles = map[analysis.Category]string{
	analysis.ReleaseDate: "Release years",
	analysis.Genre:       "Genres",
	analysis.Explicit:    "Explicit tracks",
	analysis.Duration:    "Track durations",
	analysis.TrackName:   "Tracks",
	analysis.AlbumName:   "Tracks by album",
	analysis.ArtistName:  "Tracks by artist",
}

func (c *categoryAnalyzer) GetName() string {
	return c.name
}

func (c *categoryAnalyzer) GetResults(table *store.Table, query analysis.Query) (Analysis, error) {
	query.Category = c.category
	options := c.Options
	if c.Config.FilterThreshold > 0 {
		options.MinGenreCount = int(c.Config.FilterThreshold)
	}
	return formatResult(analysis.Run(table, query, options), c.Config), nil
}

// Configure accepts n (row limit), min (genre count threshold) and bin
// (duration bin width in seconds).
func (c *categoryAnalyzer) Configure(params map[string]string) error {
	for key, value := range params {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", key, value, err)
		}
		switch key {
		case "n":
			c.Config.NumToReturn = v
		case "min":
			if c.category != analysis.Genre {
				return fmt.Errorf("parameter %q only applies to genres", key)
			}
			c.Config.FilterThreshold = int64(v)
		case "bin":
			c.Options.DurationBinSeconds = v
		default:
			return fmt.Errorf("unknown parameter %q", key)
		}
	}
	return nil
}

// formatResult lays out whichever view res carries as rows.
func formatResult(res analysis.Result, config AnalyserConfig) (a Analysis) {
	if res.Placeholder != "" {
		a.BodyOverride = res.Placeholder
		return
	}

	switch {
	case res.YearCounts != nil:
		a = yearRows(res.YearCounts)
	case res.Genres != nil:
		a = genreRows(res.Genres)
	case res.Explicit != nil:
		a = explicitRows(res.Explicit)
	case res.Durations != nil:
		a = durationRows(*res.Durations)
	case res.Tracks != nil:
		a = trackRows(res, *res.Tracks)
	default:
		a.results = [][]string{{"Tracks"}}
	}

	if config.NumToReturn > 0 && len(a.results)-1 > config.NumToReturn {
		a.results = a.results[:config.NumToReturn+1]
	}
	if a.summary == "" {
		a.summary = fmt.Sprintf("Found %d tracks released from %d to %d", res.Total, res.Years.Min, res.Years.Max)
	} else {
		a.summary = fmt.Sprintf("Found %d tracks released from %d to %d. %s", res.Total, res.Years.Min, res.Years.Max, a.summary)
	}
	return
}

// printAnalysis runs one analyser over the table and writes it in the
// requested format.
func printAnalysis(out io.Writer, table *store.Table, query analysis.Query, format string, action Analyser, options analysis.Options) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	if format == formatYAML {
		return encodeYAML(out, analysis.Run(table, query, options))
	}

	result, err := action.GetResults(table, query)
	if err != nil {
		return fmt.Errorf("getting results for %s: %w", action.GetName(), err)
	}
	fmt.Fprint(out, result)
	return nil
}

func encodeYAML(out io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return encoder.Close()
}
