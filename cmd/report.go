package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kavinbapat/top-songs/internal/analysis"
)

var reportCmd = &cobra.Command{
	Use:   "report [from] [to (optional)]",
	Short: "Generates a YAML report of every distribution",
	Long:  `Summarizes release years, genres, explicit tracks and durations for the selected years as a YAML document.`,
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		err := runReport(os.Stdout, viper.GetString("data"), analysisOptions(), args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(out io.Writer, dataPath string, options analysis.Options, args []string) error {
	table, err := openTable(dataPath)
	if err != nil {
		return fmt.Errorf("loading table: %w", err)
	}

	full, _ := analysis.FullRange(table)
	years, err := parseYearRangeFromArgs(args, full)
	if err != nil {
		return err
	}

	report := analysis.GenerateReport(table, years, options)
	if err := encodeYAML(out, report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
