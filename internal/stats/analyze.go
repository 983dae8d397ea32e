package stats

import (
	"context"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/pable/go-tt-stats/internal/model"
)

// PlayerReport bundles every analyzer's output for one player.
type PlayerReport struct {
	Player    string
	Summary   Summary
	Streaks   StreakStats
	Clutch    ClutchStats
	Rivals    []RivalStats
	Evolution []MonthlyRating
	Score     Score
}

// Analyze runs the full analyzer family over one player's records.
func Analyze(player string, records []model.MatchRecord, topRivals int) PlayerReport {
	summary := Summarize(records)
	streaks := Streaks(records)
	clutch := Clutch(records)
	return PlayerReport{
		Player:    player,
		Summary:   summary,
		Streaks:   streaks,
		Clutch:    clutch,
		Rivals:    Opponents(records, topRivals),
		Evolution: Evolution(records),
		Score:     ScoreFrom(summary, clutch, streaks),
	}
}

// AnalyzeAll fans the analysis out across players, one task per player.
// Players are independent, so the join is the only synchronization: each
// goroutine writes its own slot of a pre-sized result slice.
func AnalyzeAll(ctx context.Context, records []model.MatchRecord, topRivals int) (map[string]PlayerReport, error) {
	byPlayer := model.ByPlayer(records)

	players := make([]string, 0, len(byPlayer))
	for p := range byPlayer {
		players = append(players, p)
	}
	sort.Strings(players)

	reports := make([]PlayerReport, len(players))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, player := range players {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			reports[i] = Analyze(player, byPlayer[player], topRivals)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]PlayerReport, len(reports))
	for _, r := range reports {
		out[r.Player] = r
	}
	return out, nil
}
