package stats

import (
	"sort"

	"github.com/pable/go-tt-stats/internal/model"
)

// DefaultTopRivals is the head size for the most-frequent-opponents list.
const DefaultTopRivals = 5

// RivalStats is the head-to-head record against one opponent. WinRate is a
// 0-1 ratio rounded to 2 decimals; nil is kept as a defensive null for a
// rival with no decided matches.
type RivalStats struct {
	Opponent string
	Matches  int
	Wins     int
	WinRate  *float64
}

// Opponents returns the topN most frequent opponents by match count with
// the win rate against each. Ties on count break alphabetically so the
// output is stable.
func Opponents(records []model.MatchRecord, topN int) []RivalStats {
	if topN <= 0 {
		topN = DefaultTopRivals
	}

	byRival := make(map[string]*RivalStats)
	decided := make(map[string]int)
	for _, r := range records {
		if r.Opponent == "" {
			continue
		}
		rs, ok := byRival[r.Opponent]
		if !ok {
			rs = &RivalStats{Opponent: r.Opponent}
			byRival[r.Opponent] = rs
		}
		rs.Matches++
		switch r.Outcome {
		case model.OutcomeWon:
			rs.Wins++
			decided[r.Opponent]++
		case model.OutcomeLost:
			decided[r.Opponent]++
		}
	}

	rivals := make([]RivalStats, 0, len(byRival))
	for name, rs := range byRival {
		if d := decided[name]; d > 0 {
			rs.WinRate = ptr(round2(float64(rs.Wins) / float64(d)))
		}
		rivals = append(rivals, *rs)
	}

	sort.Slice(rivals, func(i, j int) bool {
		if rivals[i].Matches != rivals[j].Matches {
			return rivals[i].Matches > rivals[j].Matches
		}
		return rivals[i].Opponent < rivals[j].Opponent
	})

	if len(rivals) > topN {
		rivals = rivals[:topN]
	}
	return rivals
}
