package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pable/go-tt-stats/internal/history"
	"github.com/pable/go-tt-stats/internal/model"
)

// openStore opens the history database, creating its directory on first use.
func openStore() (*history.Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	store, err := history.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	return store, nil
}

// loadPlayerRecords loads one player's history, applying the --months
// window when set. A player with no records at all is an error; a window
// that filters everything out is not.
func loadPlayerRecords(ctx context.Context, store *history.Store, player string) ([]model.MatchRecord, error) {
	records, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	mine := model.ByPlayer(records)[player]
	if len(mine) == 0 {
		return nil, fmt.Errorf("no matches on record for %q (run 'ttstats players' to list known players)", player)
	}
	return applyWindow(mine), nil
}

// applyWindow restricts records to the configured look-back window.
func applyWindow(records []model.MatchRecord) []model.MatchRecord {
	if months <= 0 {
		return records
	}
	cutoff := time.Now().AddDate(0, -months, 0)
	return model.FilterSince(records, cutoff)
}
