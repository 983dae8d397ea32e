package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/pable/go-tt-stats/internal/model"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the merged history to an .xlsx or .csv file",
	Long: `Write the full persisted history to a flat file, one row per match,
with the same fields the store keeps. The format follows the output
extension: .xlsx or .csv.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "history.xlsx", "output file (.xlsx or .csv)")
}

// exportHeader is the flat-history column order.
var exportHeader = []string{
	"player", "tournament", "date", "tournament_time", "match_time",
	"player_rating", "opponent_rating", "position",
	"delta_total", "delta", "round", "opponent", "result", "sets", "won",
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, "History is empty, nothing to export.")
		return nil
	}

	switch {
	case strings.HasSuffix(exportOut, ".csv"):
		err = exportCSV(exportOut, records)
	case strings.HasSuffix(exportOut, ".xlsx"):
		err = exportXLSX(exportOut, records)
	default:
		return fmt.Errorf("unsupported output extension in %q (want .xlsx or .csv)", exportOut)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Wrote %d match(es) to %s\n", len(records), exportOut)
	return nil
}

func exportCSV(path string, records []model.MatchRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(exportRow(r)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func exportXLSX(path string, records []model.MatchRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "history"
	f.SetSheetName(f.GetSheetName(0), sheet)

	writeRow := func(rowNum int, values []string) error {
		cellRef, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		row := make([]any, len(values))
		for i, v := range values {
			row[i] = v
		}
		return f.SetSheetRow(sheet, cellRef, &row)
	}

	if err := writeRow(1, exportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		if err := writeRow(i+2, exportRow(r)); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func exportRow(r model.MatchRecord) []string {
	sets := make([]string, len(r.Sets))
	for i, s := range r.Sets {
		sets[i] = fmt.Sprintf("%d-%d", s.Player, s.Opponent)
	}
	return []string{
		r.Player,
		r.Tournament,
		model.DateKey(r.Date),
		r.TournamentTime,
		r.MatchTime,
		optInt(r.PlayerRating),
		optInt(r.OpponentRating),
		r.Position,
		optFloat(r.DeltaTotal),
		optFloat(r.Delta),
		r.Round,
		r.Opponent,
		r.Result,
		strings.Join(sets, " "),
		r.Outcome.String(),
	}
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
