// Package history keeps the persisted match history: a sqlite-backed store
// read and rewritten as a whole, plus the deduplicating merge that folds
// freshly parsed batches into it.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/pable/go-tt-stats/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// Store wraps a sql.DB holding the merged match history.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the history database at the given path and
// applies the schema. Use ":memory:" for tests.
func Open(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Load reads the full persisted history, ordered by player and then
// chronologically.
func (s *Store) Load(ctx context.Context) ([]model.MatchRecord, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT player, tournament, match_date, tournament_time, match_time,
		       player_rating, opponent_rating, position,
		       delta_total, delta, round, opponent, result, sets, outcome
		FROM matches
		ORDER BY player, match_date, tournament_time, match_time, id`)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var records []model.MatchRecord
	for rows.Next() {
		var (
			r          model.MatchRecord
			date       string
			playerRat  sql.NullInt64
			oppRat     sql.NullInt64
			deltaTotal sql.NullFloat64
			delta      sql.NullFloat64
			sets       string
			outcome    int
		)
		if err := rows.Scan(&r.Player, &r.Tournament, &date, &r.TournamentTime, &r.MatchTime,
			&playerRat, &oppRat, &r.Position,
			&deltaTotal, &delta, &r.Round, &r.Opponent, &r.Result, &sets, &outcome); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		if date != "" {
			if d, err := time.Parse("2006-01-02", date); err == nil {
				r.Date = d
			}
		}
		if playerRat.Valid {
			v := int(playerRat.Int64)
			r.PlayerRating = &v
		}
		if oppRat.Valid {
			v := int(oppRat.Int64)
			r.OpponentRating = &v
		}
		if deltaTotal.Valid {
			v := deltaTotal.Float64
			r.DeltaTotal = &v
		}
		if delta.Valid {
			v := delta.Float64
			r.Delta = &v
		}
		r.Sets = decodeSets(sets)
		r.Outcome = model.Outcome(outcome)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Save replaces the full persisted history with the given records in one
// transaction. Outcomes are backfilled first so legacy rows without a
// derived result are repaired on every rewrite.
func (s *Store) Save(ctx context.Context, records []model.MatchRecord) error {
	BackfillOutcomes(records)

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM matches"); err != nil {
		return fmt.Errorf("clear matches: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO matches(
			player, tournament, match_date, tournament_time, match_time,
			player_rating, opponent_rating, position,
			delta_total, delta, round, opponent, result, sets, outcome
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.ExecContext(ctx,
			r.Player, r.Tournament, model.DateKey(r.Date), r.TournamentTime, r.MatchTime,
			nullInt(r.PlayerRating), nullInt(r.OpponentRating), r.Position,
			nullFloat(r.DeltaTotal), nullFloat(r.Delta),
			r.Round, r.Opponent, r.Result, encodeSets(r.Sets), int(r.Outcome),
		)
		if err != nil {
			return fmt.Errorf("insert match: %w", err)
		}
	}
	return tx.Commit()
}

// encodeSets renders sets back into the exporter's compact form.
func encodeSets(sets []model.SetScore) string {
	tokens := make([]string, len(sets))
	for i, s := range sets {
		tokens[i] = fmt.Sprintf("%d-%d", s.Player, s.Opponent)
	}
	return strings.Join(tokens, " ")
}

func decodeSets(raw string) []model.SetScore {
	if raw == "" {
		return nil
	}
	var sets []model.SetScore
	for _, token := range strings.Fields(raw) {
		var p, o int
		if _, err := fmt.Sscanf(token, "%d-%d", &p, &o); err != nil {
			continue
		}
		sets = append(sets, model.SetScore{Player: p, Opponent: o})
	}
	return sets
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
