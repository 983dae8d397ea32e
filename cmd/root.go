package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pable/go-tt-stats/internal/config"
)

var (
	cfg    config.Config
	logger zerolog.Logger

	dbPath string
	months int
)

var rootCmd = &cobra.Command{
	Use:   "ttstats",
	Short: "Table-tennis match-history analytics tool",
	Long:  "Import exported match-history workbooks, merge them into a deduplicated history, and compute per-player statistics, streaks, clutch metrics and a composite score.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cfg = config.Load()
	logger = cfg.Logger()

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "path to the history database")
	rootCmd.PersistentFlags().IntVar(&months, "months", 0, "restrict analytics to the last N months (0 = all)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(streaksCmd)
	rootCmd.AddCommand(clutchCmd)
	rootCmd.AddCommand(opponentsCmd)
	rootCmd.AddCommand(evolutionCmd)
	rootCmd.AddCommand(rateCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(dropCmd)
}
