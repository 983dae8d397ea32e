package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/report"
	"github.com/pable/go-tt-stats/internal/stats"
)

// summaryCmd renders the global per-player summary.
var summaryCmd = &cobra.Command{
	Use:   "summary <player>",
	Short: "Show the global statistics summary for a player",
	Long: `Compute and display the full per-player summary: win/loss record,
rating aggregates, points and sets, rating-bracket and tier performance,
score-line frequencies, per-round breakdown, tournament aggregates and
recent momentum.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := loadPlayerRecords(cmd.Context(), store, args[0])
	if err != nil {
		return err
	}
	report.PrintSummary(os.Stdout, args[0], stats.Summarize(records))
	return nil
}
