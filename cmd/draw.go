package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// drawCmd represents the draw command
var drawCmd = &cobra.Command{
	Use:   "draw [deck] [count]",
	Short: "Draw cards from a deck",
	Long: `Draw shuffles what is left of a deck and draws count cards from it (one by
default). Drawn cards are recorded so they stay out of the deck until it is reset.

If the deck has fewer cards than requested, the remaining cards are shown and
nothing is recorded.

Examples:
  deckhand draw frontier
  deckhand draw relic 3`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := appFrom(cmd)
		deckID := args[0]

		count := 1
		if len(args) == 2 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid count %q: must be a whole number", args[1])
			}
			count = n
		}

		engine, err := a.Engine()
		if err != nil {
			return err
		}

		result, err := engine.Draw(deckID, count)
		if err != nil {
			return err
		}

		a.printer.Drawn(deckID, result)

		if result.Shortfall > 0 && a.printer.Interactive() {
			return askDiscard(a, deckID)
		}

		return nil
	},
}

// askDiscard asks how many relic fragments were discarded once a deck runs out
func askDiscard(a *app, deckID string) error {
	fragments, err := a.printer.Ask("How many relic fragments are in the discard?")
	if err != nil {
		return err
	}
	// Not stored anywhere, nothing uses the answer yet.
	a.logger.Debug("relic fragments in discard", "deck", deckID, "fragments", fragments)
	return nil
}

func init() {
	RootCmd.AddCommand(drawCmd)
}
