package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kavinbapat/top-songs/internal/analysis"
)

// QueryConfig holds the settings shared by every command that reads the table.
type QueryConfig struct {
	DataPath              string
	Format                string
	IncludeZeroPopularity bool
	Options               analysis.Options
}

func queryConfigFromViper() QueryConfig {
	return QueryConfig{
		DataPath:              viper.GetString("data"),
		Format:                viper.GetString("format"),
		IncludeZeroPopularity: viper.GetBool("include-zero-popularity"),
		Options:               analysisOptions(),
	}
}

var queryCmd = &cobra.Command{
	Use:   "query <category> [from] [to (optional)]",
	Short: "Runs the analysis for one category",
	Long: `Runs the analysis for a category over the specified year or year range.
  <category> is one of: ` + strings.Join(categoryNames(), ", ") + `,
  or the matching column name (e.g. 'Album Release Date').
  Year arguments look like 'yyyy' or 'yyyy-yyyy'. If no years are provided,
  every year in the table is used. An unknown category prints a placeholder.`,
	Args: cobra.RangeArgs(1, 3),
	Run: func(cmd *cobra.Command, args []string) {
		err := printQuery(os.Stdout, queryConfigFromViper(), args[0], args[1:])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func categoryNames() []string {
	var names []string
	for _, c := range analysis.Categories() {
		names = append(names, c.String())
	}
	return names
}

func printQuery(out io.Writer, config QueryConfig, categoryName string, args []string) error {
	return printCategory(out, config, analysis.ParseCategory(categoryName), args)
}

// printCategory loads the table, resolves the year arguments and prints one
// category of results.
func printCategory(out io.Writer, config QueryConfig, category analysis.Category, args []string) error {
	table, err := openTable(config.DataPath)
	if err != nil {
		return err
	}

	full, _ := analysis.FullRange(table)
	years, err := parseYearRangeFromArgs(args, full)
	if err != nil {
		return err
	}

	query := analysis.Query{
		Category:              category,
		Years:                 years,
		IncludeZeroPopularity: config.IncludeZeroPopularity,
	}
	return printAnalysis(out, table, query, config.Format, newCategoryAnalyzer(category, config.Options), config.Options)
}
