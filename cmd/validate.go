package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [deck|path]",
	Short: "Validate a deck source file",
	Long: `Validate checks a deck source file for problems: unreadable files, cards
without a title, titles with line breaks, counts below one and duplicated
titles. Pass a configured deck name or the path to a .json, .toml or .csv file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		sourcePath := args[0]

		// Anything that isn't an existing file is looked up as a deck name
		if !fileExists(sourcePath) {
			cfg, err := a.Config()
			if err != nil {
				return err
			}
			files, err := cfg.Deck(sourcePath)
			if err != nil {
				return err
			}
			sourcePath = files.Source
		}

		v := validator.NewValidator(sourcePath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ '%s' is a valid deck.\n", sourcePath)
		} else {
			fmt.Fprintf(out, "❌ '%s' has %d validation errors:\n", sourcePath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
