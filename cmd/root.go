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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kavinbapat/top-songs/internal/analysis"
	"github.com/kavinbapat/top-songs/internal/store"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

var cfgFile string
var dataPath string
var outputFormat string
var includeZeroPopularity bool
var durationBin int
var minGenreCount int
var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "top-songs",
	Short: "Explores a dataset of popular songs",
	Long: `Loads a CSV export of songs, normalizes release dates, buckets artist genres
and reports distributions by release year, genre, explicit flag and duration.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.top-songs.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&dataPath, "data", "d", "./songs.csv", "Path to the songs CSV file")
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	rootCmd.PersistentFlags().StringVar(
		&outputFormat, "format", formatTable, "Output format: table or yaml")
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.PersistentFlags().BoolVar(
		&includeZeroPopularity, "include-zero-popularity", false, "Include tracks with zero popularity in track-level results")
	viper.BindPFlag("include-zero-popularity", rootCmd.PersistentFlags().Lookup("include-zero-popularity"))

	rootCmd.PersistentFlags().IntVar(
		&durationBin, "duration-bin", analysis.DefaultOptions().DurationBinSeconds, "Width of duration histogram bins, in seconds")
	viper.BindPFlag("duration-bin", rootCmd.PersistentFlags().Lookup("duration-bin"))

	rootCmd.PersistentFlags().IntVar(
		&minGenreCount, "min-genre-count", 0, "Hide genres with this many tracks or fewer")
	viper.BindPFlag("min-genre-count", rootCmd.PersistentFlags().Lookup("min-genre-count"))

	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "Print every row that had an unparseable value")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in a .env file, the config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Error reading .env:", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".top-songs" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".top-songs")
	}

	// TOP_SONGS_DATA, TOP_SONGS_MIN_GENRE_COUNT, ...
	viper.SetEnvPrefix("TOP_SONGS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.PersistentFlags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// openTable loads the songs table and reports ingestion problems on stderr.
func openTable(path string) (*store.Table, error) {
	table, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("openTable: %w", err)
	}
	reportIngestion(os.Stderr, table, viper.GetBool("verbose"))
	return table, nil
}

func reportIngestion(out io.Writer, table *store.Table, all bool) {
	if n := table.MissingDates(); n > 0 {
		fmt.Fprintf(out, "%d of %d tracks have no usable release date\n", n, table.Len())
	}
	warnings := table.Warnings()
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(out, "%d rows had unparseable values\n", len(warnings))
	if all {
		for _, w := range warnings {
			fmt.Fprintln(out, "  "+w)
		}
	}
}

// analysisOptions collects the aggregation settings from flags, env and config.
func analysisOptions() analysis.Options {
	return analysis.Options{
		DurationBinSeconds: viper.GetInt("duration-bin"),
		MinGenreCount:      viper.GetInt("min-genre-count"),
	}
}

func checkFormat(format string) error {
	switch format {
	case formatTable, formatYAML:
		return nil
	}
	return fmt.Errorf("Invalid format %q: expected %s or %s", format, formatTable, formatYAML)
}
