package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/report"
	"github.com/pable/go-tt-stats/internal/stats"
)

var streaksCmd = &cobra.Command{
	Use:   "streaks <player>",
	Short: "Show win/loss streaks for a player",
	Args:  cobra.ExactArgs(1),
	RunE:  runStreaks,
}

func runStreaks(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := loadPlayerRecords(cmd.Context(), store, args[0])
	if err != nil {
		return err
	}
	report.PrintStreaks(os.Stdout, args[0], stats.Streaks(records))
	return nil
}
