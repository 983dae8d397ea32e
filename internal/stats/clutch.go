package stats

import (
	"strings"

	"github.com/pable/go-tt-stats/internal/model"
)

// ClutchStats covers performance under pressure: deciding sets, finals,
// comebacks from two sets down, and match-point conversion.
type ClutchStats struct {
	FiveSetWinRate *float64
	FiveSetMatches int

	FinalsWinRate *float64
	FinalsMatches int

	ComebackWins int
	ComebackPct  float64

	// MatchPointPct is the share of all matches where the player closed
	// the final set by two or more points. Lost matches and matches
	// without set detail count as missed conversions, not exclusions;
	// nil only when there are no matches at all.
	MatchPointPct *float64
}

// Clutch computes the clutch profile for one player's records.
func Clutch(records []model.MatchRecord) ClutchStats {
	var c ClutchStats

	var fiveSetWins, fiveSetDecided int
	var finalsWins, finalsDecided int
	var mpConverted int

	for _, r := range records {
		if len(r.Sets) >= 5 {
			c.FiveSetMatches++
			switch r.Outcome {
			case model.OutcomeWon:
				fiveSetWins++
				fiveSetDecided++
			case model.OutcomeLost:
				fiveSetDecided++
			}
		}

		if strings.Contains(strings.ToLower(r.Round), "final") {
			c.FinalsMatches++
			switch r.Outcome {
			case model.OutcomeWon:
				finalsWins++
				finalsDecided++
			case model.OutcomeLost:
				finalsDecided++
			}
		}

		if isComebackWin(r) {
			c.ComebackWins++
		}

		if convertedMatchPoint(r) {
			mpConverted++
		}
	}

	c.FiveSetWinRate = pct(fiveSetWins, fiveSetDecided)
	c.FinalsWinRate = pct(finalsWins, finalsDecided)
	if len(records) > 0 {
		c.ComebackPct = round2(100 * float64(c.ComebackWins) / float64(len(records)))
	}
	c.MatchPointPct = pct(mpConverted, len(records))
	return c
}

// isComebackWin reports whether the player trailed by two or more sets at
// any point of the match and still won it.
func isComebackWin(r model.MatchRecord) bool {
	if r.Outcome != model.OutcomeWon {
		return false
	}
	diff := 0
	for _, s := range r.Sets {
		switch {
		case s.Won():
			diff++
		case s.Lost():
			diff--
		}
		if diff <= -2 {
			return true
		}
	}
	return false
}

// convertedMatchPoint reports a won match whose final set closed with a
// margin of two or more points.
func convertedMatchPoint(r model.MatchRecord) bool {
	if r.Outcome != model.OutcomeWon || len(r.Sets) == 0 {
		return false
	}
	last := r.Sets[len(r.Sets)-1]
	return last.Player > last.Opponent && last.Player-last.Opponent >= 2
}
