package history

import (
	"context"
	"fmt"
)

// PlayerCount is one row of the per-player overview.
type PlayerCount struct {
	Player      string
	Matches     int
	Tournaments int
	FirstDate   string
	LastDate    string
}

// Players returns the distinct player names in the history, sorted.
func (s *Store) Players(ctx context.Context) ([]string, error) {
	rows, err := s.conn.QueryContext(ctx, "SELECT DISTINCT player FROM matches ORDER BY player")
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var players []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// CountByPlayer returns match and tournament counts per player, most
// matches first.
func (s *Store) CountByPlayer(ctx context.Context) ([]PlayerCount, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT player,
		       COUNT(*),
		       COUNT(DISTINCT tournament || '|' || match_date),
		       COALESCE(MIN(NULLIF(match_date, '')), ''),
		       COALESCE(MAX(match_date), '')
		FROM matches
		GROUP BY player
		ORDER BY COUNT(*) DESC, player`)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	var counts []PlayerCount
	for rows.Next() {
		var c PlayerCount
		if err := rows.Scan(&c.Player, &c.Matches, &c.Tournaments, &c.FirstDate, &c.LastDate); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

// TotalMatches returns the number of stored records.
func (s *Store) TotalMatches(ctx context.Context) (int, error) {
	var n int
	if err := s.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM matches").Scan(&n); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return n, nil
}
