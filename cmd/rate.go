package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/report"
	"github.com/pable/go-tt-stats/internal/stats"
)

var rateCmd = &cobra.Command{
	Use:   "rate <player>",
	Short: "Compute a player's composite 1-10 score",
	Long: `Combine rating level, tier-weighted win rates, match volume, delta
volatility, momentum, clutch performance, tournament experience and the
longest win streak into one weighted score on a 1-10 scale.`,
	Args: cobra.ExactArgs(1),
	RunE: runRate,
}

func runRate(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := loadPlayerRecords(cmd.Context(), store, args[0])
	if err != nil {
		return err
	}
	report.PrintScore(os.Stdout, args[0], stats.ComputeScore(records))
	return nil
}
