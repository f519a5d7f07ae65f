package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/deckhand/internal/deck"
)

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset [deck]",
	Short: "Put every drawn card back into a deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		engine, err := a.Engine()
		if err != nil {
			return err
		}

		if err := engine.Reset(args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "The %s deck has been reset.\n", a.printer.DeckName(args[0]))
		return nil
	},
}

// startGameCmd represents the start-game command
var startGameCmd = &cobra.Command{
	Use:   "start-game",
	Short: "Reset every deck for a new game",
	Long: `Start-game puts every drawn card back into every configured deck. You are
asked to confirm first unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		engine, err := a.Engine()
		if err != nil {
			return err
		}

		var confirmer deck.Confirmer = a.printer
		if yes, _ := cmd.Flags().GetBool("yes"); yes {
			confirmer = approved{}
		}

		reset, err := engine.ResetAll(confirmer)
		if errors.Is(err, deck.ErrAborted) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted. No decks were reset.")
			return nil
		}
		if err != nil {
			return err
		}

		if len(reset) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "All decks are already full. Good luck!")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %s. Good luck!\n", strings.Join(reset, ", "))
		return nil
	},
}

// approved confirms without asking
type approved struct{}

func (approved) Confirm(string) (bool, error) {
	return true, nil
}

func init() {
	RootCmd.AddCommand(resetCmd)
	RootCmd.AddCommand(startGameCmd)

	startGameCmd.Flags().BoolP("yes", "y", false, "Don't ask for confirmation")
}
