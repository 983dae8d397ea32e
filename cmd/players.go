package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/report"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List players in the history with match and tournament counts",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	counts, err := store.CountByPlayer(cmd.Context())
	if err != nil {
		return fmt.Errorf("count by player: %w", err)
	}
	if len(counts) == 0 {
		fmt.Fprintln(os.Stdout, "History is empty. Run 'ttstats import <workbook.xlsx>' to add matches.")
		return nil
	}
	report.PrintPlayers(os.Stdout, counts)

	total, err := store.TotalMatches(cmd.Context())
	if err != nil {
		return fmt.Errorf("count matches: %w", err)
	}
	fmt.Fprintf(os.Stdout, "\n%d match(es) on record across %d player(s).\n", total, len(counts))
	return nil
}
