package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showCmd represents the show command group
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the state of a deck",
	Long: `Show displays what is left in a deck, what has been drawn from it, or the
odds of each card being drawn next. Nothing is changed.`,
}

// showRemainingCmd represents the show remaining command
var showRemainingCmd = &cobra.Command{
	Use:   "remaining [deck]",
	Short: "List the cards still in a deck, in shuffled order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		engine, err := a.Engine()
		if err != nil {
			return err
		}

		cards, err := engine.Remaining(args[0])
		if err != nil {
			return err
		}

		a.printer.Cards(fmt.Sprintf("Remaining in the %s deck", a.printer.DeckName(args[0])), cards)
		return nil
	},
}

// showHistoryCmd represents the show history command
var showHistoryCmd = &cobra.Command{
	Use:   "history [deck]",
	Short: "List the cards drawn from a deck since it was last reset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		engine, err := a.Engine()
		if err != nil {
			return err
		}

		cards, err := engine.History(args[0])
		if err != nil {
			return err
		}

		a.printer.Cards(fmt.Sprintf("Drawn from the %s deck", a.printer.DeckName(args[0])), cards)
		return nil
	},
}

// showProbabilityCmd represents the show probability command
var showProbabilityCmd = &cobra.Command{
	Use:   "probability [deck]",
	Short: "Show the chance of each remaining card being drawn next",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		engine, err := a.Engine()
		if err != nil {
			return err
		}

		report, err := engine.Probability(args[0])
		if err != nil {
			return err
		}

		a.printer.Probability(args[0], report)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
	showCmd.AddCommand(showRemainingCmd)
	showCmd.AddCommand(showHistoryCmd)
	showCmd.AddCommand(showProbabilityCmd)
}
