package stats

import "github.com/pable/go-tt-stats/internal/model"

// currentStreakWindow bounds the backward scan for the active streak.
const currentStreakWindow = 20

// StreakStats summarizes win/loss runs over a player's chronological history.
// Current is signed: positive for an active win streak, negative for an
// active loss streak, 0 when the most recent decided match broke both.
type StreakStats struct {
	MaxWins    int
	MaxLosses  int
	LongWins   int
	LongLosses int
	Current    int
	Threshold  int
}

// StreakThreshold is the adaptive long-streak threshold: players with more
// matches need longer runs before a streak counts as "long".
func StreakThreshold(totalMatches int) int {
	switch {
	case totalMatches < 30:
		return 3
	case totalMatches < 100:
		return 4
	case totalMatches < 300:
		return 5
	case totalMatches < 600:
		return 6
	default:
		return 7
	}
}

// Streaks runs a single forward pass over the sorted outcome sequence.
// Unknown outcomes neither break nor extend a streak. Long streaks count
// once per contiguous qualifying run, however far past the threshold the
// run continues.
func Streaks(records []model.MatchRecord) StreakStats {
	recs := make([]model.MatchRecord, len(records))
	copy(recs, records)
	model.SortChronological(recs)

	s := StreakStats{Threshold: StreakThreshold(len(recs))}

	var curWins, curLosses int
	var inLongWin, inLongLoss bool
	for _, r := range recs {
		switch r.Outcome {
		case model.OutcomeWon:
			curWins++
			curLosses = 0
			if curWins > s.MaxWins {
				s.MaxWins = curWins
			}
			if curWins >= s.Threshold && !inLongWin {
				s.LongWins++
				inLongWin = true
			}
			inLongLoss = false
		case model.OutcomeLost:
			curLosses++
			curWins = 0
			if curLosses > s.MaxLosses {
				s.MaxLosses = curLosses
			}
			if curLosses >= s.Threshold && !inLongLoss {
				s.LongLosses++
				inLongLoss = true
			}
			inLongWin = false
		}
	}

	s.Current = currentStreak(recs)
	return s
}

// currentStreak scans the last matches from most recent backward, stopping
// at the first decided result of the opposite sign.
func currentStreak(recs []model.MatchRecord) int {
	window := recs
	if len(window) > currentStreakWindow {
		window = window[len(window)-currentStreakWindow:]
	}
	streak := 0
	for i := len(window) - 1; i >= 0; i-- {
		switch window[i].Outcome {
		case model.OutcomeWon:
			if streak < 0 {
				return streak
			}
			streak++
		case model.OutcomeLost:
			if streak > 0 {
				return streak
			}
			streak--
		}
	}
	return streak
}
