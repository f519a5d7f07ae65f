package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/card"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [table.csv] [output]",
	Short: "Convert a CSV card table into a deck source file",
	Long: `Convert reads a CSV table with the columns "Card", "Effect" and
"Number in Deck" and writes it as a deck source file. The output format is
chosen by extension: .json or .toml.

Examples:
  deckhand convert frontier.csv ~/.local/share/deckhand/frontier.json
  deckhand convert relic.csv relic.toml --force`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tablePath, outputPath := args[0], args[1]
		force, _ := cmd.Flags().GetBool("force")

		if fileExists(outputPath) && !force {
			return fmt.Errorf("%s already exists, use --force to overwrite it", outputPath)
		}

		table, err := os.Open(tablePath)
		if err != nil {
			return fmt.Errorf("error opening table: %v", err)
		}
		defer table.Close()

		defs, err := card.ReadTable(table)
		if err != nil {
			return fmt.Errorf("%s: %w", tablePath, err)
		}

		var buf bytes.Buffer
		if err := card.EncodeDefinitions(&buf, defs, filepath.Ext(outputPath)); err != nil {
			return err
		}
		if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("error writing %s: %v", outputPath, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d cards (%d definitions) to %s\n",
			card.Total(defs), len(defs), outputPath)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolP("force", "f", false, "Overwrite the output file if it exists")
}
