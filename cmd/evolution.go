package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/report"
	"github.com/pable/go-tt-stats/internal/stats"
)

var evolutionRecent int

var evolutionCmd = &cobra.Command{
	Use:   "evolution <player>",
	Short: "Show a player's mean rating by calendar month",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvolution,
}

func init() {
	evolutionCmd.Flags().IntVar(&evolutionRecent, "recent", 0, "show only the most recent N months (0 = all)")
}

func runEvolution(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := loadPlayerRecords(cmd.Context(), store, args[0])
	if err != nil {
		return err
	}

	series := stats.RecentMonths(stats.Evolution(records), evolutionRecent)
	report.PrintEvolution(os.Stdout, args[0], series)
	return nil
}
