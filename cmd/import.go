package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/history"
	"github.com/pable/go-tt-stats/internal/model"
	"github.com/pable/go-tt-stats/internal/parser"
)

var importCmd = &cobra.Command{
	Use:   "import <workbook.xlsx>",
	Short: "Parse an exported match-history workbook and merge it into the history",
	Long: `Parse every sheet of an exported .xlsx match-history workbook (one sheet
per player) and merge the matches into the persisted history. A match
already on record (same player, date, tournament, start time, opponent
and round) is reported as a duplicate and the stored record is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	workbookPath := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Fprintf(os.Stdout, "Parsing %s...\n", workbookPath)
	histories, err := parser.New(logger).ParseWorkbook(workbookPath)
	if err != nil {
		return fmt.Errorf("parse workbook: %w", err)
	}

	var batch []model.MatchRecord
	players := make([]string, 0, len(histories))
	for player, records := range histories {
		players = append(players, player)
		batch = append(batch, records...)
	}
	sort.Strings(players)
	for _, player := range players {
		fmt.Fprintf(os.Stdout, "  %-24s %d match(es)\n", player, len(histories[player]))
	}

	ctx := cmd.Context()
	existing, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	merged, res := history.Merge(existing, batch)
	if err := store.Save(ctx, merged); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	logger.Info().
		Int("added", res.Added).
		Int("duplicates", res.Duplicates).
		Int("total", len(merged)).
		Msg("history merged")
	fmt.Fprintf(os.Stdout, "\n%d match(es) added, %d duplicate(s) skipped. History now holds %d match(es).\n",
		res.Added, res.Duplicates, len(merged))
	return nil
}
