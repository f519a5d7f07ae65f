package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage the configured decks",
	Long:  `Commands for listing the configured decks and setting up the data directory.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List configured decks and how many cards are left in each",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		cfg, err := a.Config()
		if err != nil {
			return err
		}
		engine, err := a.Engine()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		ids := cfg.DeckIDs()
		if len(ids) == 0 {
			fmt.Fprintln(out, "No decks configured.")
			fmt.Fprintln(out, "Add a [decks.<name>] section to:", cfg.Path)
			return nil
		}

		for _, id := range ids {
			status, err := engine.Status(id)
			if err != nil {
				// Not a usable deck, report and keep going
				fmt.Fprintf(out, "  %s: %v\n", id, err)
				continue
			}
			a.printer.Status(id, status)
		}
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		cfg, err := a.Config()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Config file initialized at:", cfg.Path)

		// Create the data directory if it doesn't exist
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return fmt.Errorf("error creating data directory: %v", err)
		}
		fmt.Fprintln(out, "Data directory initialized at:", cfg.DataDir)

		for _, id := range cfg.DeckIDs() {
			files, err := cfg.Deck(id)
			if err != nil {
				return err
			}
			if !fileExists(files.Source) {
				fmt.Fprintf(out, "Add the %s cards to %s (deckhand convert can build it from a table).\n", id, files.Source)
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckInitCmd)
}
