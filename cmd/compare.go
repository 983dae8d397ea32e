package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/report"
	"github.com/pable/go-tt-stats/internal/stats"
)

var compareCmd = &cobra.Command{
	Use:   "compare <player-a> <player-b>",
	Short: "Compare two players' scores and headline stats side by side",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	if args[0] == args[1] {
		return fmt.Errorf("need two different players")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	recordsA, err := loadPlayerRecords(ctx, store, args[0])
	if err != nil {
		return err
	}
	recordsB, err := loadPlayerRecords(ctx, store, args[1])
	if err != nil {
		return err
	}

	report.PrintComparison(os.Stdout,
		stats.Analyze(args[0], recordsA, cfg.TopRivals),
		stats.Analyze(args[1], recordsB, cfg.TopRivals))
	return nil
}
