package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/report"
	"github.com/pable/go-tt-stats/internal/stats"
)

var clutchCmd = &cobra.Command{
	Use:   "clutch <player>",
	Short: "Show clutch metrics for a player",
	Long:  "Deciding-set win rate, finals win rate, comeback wins from two sets down, and match-point conversion.",
	Args:  cobra.ExactArgs(1),
	RunE:  runClutch,
}

func runClutch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := loadPlayerRecords(cmd.Context(), store, args[0])
	if err != nil {
		return err
	}
	report.PrintClutch(os.Stdout, args[0], stats.Clutch(records))
	return nil
}
