package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/report"
	"github.com/pable/go-tt-stats/internal/stats"
)

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Score every player in the history and rank them",
	Long: `Run the full analyzer family over every player in the history, one
task per player, and rank them by composite score.`,
	Args: cobra.NoArgs,
	RunE: runRankings,
}

func runRankings(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	records = applyWindow(records)
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "History is empty. Run 'ttstats import <workbook.xlsx>' to add matches.")
		return nil
	}

	reports, err := stats.AnalyzeAll(cmd.Context(), records, cfg.TopRivals)
	if err != nil {
		return fmt.Errorf("analyze players: %w", err)
	}
	report.PrintRankings(os.Stdout, reports)
	return nil
}
