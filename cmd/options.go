package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kavinbapat/top-songs/internal/store"
)

var optionsSplit bool

var optionsCmd = &cobra.Command{
	Use:   "options <field>",
	Short: "Lists the distinct values of a field",
	Long: `Lists the distinct values of a field in the order they first appear.
  <field> is one of: track, artist, album, genre, explicit, release-date.
  With --split, comma separated values such as "Simon,Garfunkel" are listed separately.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := printOptions(os.Stdout, queryConfigFromViper(), args[0], optionsSplit)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
	optionsCmd.Flags().BoolVar(&optionsSplit, "split", false, "Split comma separated values")
}

func printOptions(out io.Writer, config QueryConfig, fieldName string, split bool) error {
	if err := checkFormat(config.Format); err != nil {
		return err
	}
	field, err := store.ParseField(fieldName)
	if err != nil {
		return err
	}
	table, err := openTable(config.DataPath)
	if err != nil {
		return err
	}

	values := store.DistinctValues(table.Tracks(), field, split)
	if config.Format == formatYAML {
		return encodeYAML(out, values)
	}
	for _, v := range values {
		fmt.Fprintln(out, v)
	}
	return nil
}
