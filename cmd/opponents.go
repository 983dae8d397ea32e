package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/report"
	"github.com/pable/go-tt-stats/internal/stats"
)

var opponentsTop int

var opponentsCmd = &cobra.Command{
	Use:   "opponents <player>",
	Short: "Show a player's most frequent opponents and the record against each",
	Args:  cobra.ExactArgs(1),
	RunE:  runOpponents,
}

func init() {
	opponentsCmd.Flags().IntVar(&opponentsTop, "top", 0, "number of rivals to show (default from TTSTATS_TOP_RIVALS)")
}

func runOpponents(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := loadPlayerRecords(cmd.Context(), store, args[0])
	if err != nil {
		return err
	}

	top := opponentsTop
	if top <= 0 {
		top = cfg.TopRivals
	}
	report.PrintRivals(os.Stdout, args[0], stats.Opponents(records, top))
	return nil
}
