package stats

import (
	"strings"

	"github.com/pable/go-tt-stats/internal/model"
)

// Momentum classifications over the last ten matches.
const (
	MomentumRising       = "rising"
	MomentumFalling      = "falling"
	MomentumStable       = "stable"
	MomentumInsufficient = "insufficient data"
)

// Fixed momentum policy: window size and the delta-sum thresholds that
// separate rising/falling from stable.
const (
	momentumWindow    = 10
	momentumThreshold = 5.0
)

// Tier classifies an opponent's rating relative to the player's own mean
// rating, ±50 points.
type Tier int

const (
	TierUnknown Tier = iota
	TierTop
	TierMedium
	TierLow
)

func (t Tier) String() string {
	switch t {
	case TierTop:
		return "top"
	case TierMedium:
		return "medium"
	case TierLow:
		return "low"
	default:
		return "unknown"
	}
}

// Tiers lists all tiers in display order.
var Tiers = []Tier{TierTop, TierMedium, TierLow, TierUnknown}

// RoundStats is the per-round-type breakdown (round labels compared
// case-insensitively).
type RoundStats struct {
	Played    int
	Wins      int
	Losses    int
	WinRate   *float64
	MeanDelta *float64
}

// PlacementStats covers matches in one specific round ("Final", "3rd").
type PlacementStats struct {
	Played  int
	Wins    int
	WinRate *float64
}

// Winning and losing score lines tracked by the frequency table.
var (
	WinningScorelines = []string{"3:0", "3:1", "3:2"}
	LosingScorelines  = []string{"0:3", "1:3", "2:3"}
)

// Summary is the global per-player aggregate. Nil pointers mean "no
// sample", never zero.
type Summary struct {
	Matches int
	Wins    int
	Losses  int
	WinRate *float64

	Tournaments int

	MeanRating         *float64
	RatingMin          *int
	RatingMax          *int
	MeanOpponentRating *float64
	MeanRatingGap      *float64

	DeltaSum           float64
	DeltaMean          *float64
	DeltaMeanWins      *float64
	DeltaMeanLosses    *float64
	TournamentDeltaSum float64

	PointsWon     int
	PointsLost    int
	PointsWonPct  *float64
	PointDiffMean *float64

	SetsWon    int
	SetsLost   int
	SetsWonPct *float64

	MeanPointsInSetsWon       *float64
	MeanPointsConcededSetsWon *float64
	MeanPointsInSetsLost      *float64
	MeanPointsConcededLost    *float64

	WinsVsHigher    int
	LossesVsHigher  int
	WinRateVsHigher *float64
	WinsVsLower     int
	LossesVsLower   int
	LossRateVsLower *float64

	ScorelineWins   map[string]int
	ScorelineLosses map[string]int

	Rounds map[string]RoundStats

	MeanFinishPosition  *float64
	TournamentsWon      int
	TournamentsWonPct   *float64
	MeanTournamentDelta *float64

	Momentum         string
	MomentumDeltaSum *float64

	DeltaStdDev *float64

	TierWinRates map[Tier]*float64

	Finals     PlacementStats
	ThirdPlace PlacementStats
}

// Summarize computes the global summary for one player's records. The
// input is copied and sorted chronologically before any sequential rule
// (last match per tournament, momentum) is applied.
func Summarize(records []model.MatchRecord) Summary {
	recs := make([]model.MatchRecord, len(records))
	copy(recs, records)
	model.SortChronological(recs)

	s := Summary{
		Matches:         len(recs),
		ScorelineWins:   make(map[string]int, len(WinningScorelines)),
		ScorelineLosses: make(map[string]int, len(LosingScorelines)),
		Rounds:          make(map[string]RoundStats),
		TierWinRates:    make(map[Tier]*float64, len(Tiers)),
	}

	var (
		ratings, oppRatings, ratingGaps  []float64
		deltas, winDeltas, lossDeltas    []float64
		pointDiffs                       []float64
		pointsInWonSets, concededWonSets []float64
		pointsInLostSets, concededLost   []float64
	)

	for _, r := range recs {
		switch r.Outcome {
		case model.OutcomeWon:
			s.Wins++
		case model.OutcomeLost:
			s.Losses++
		}

		if r.PlayerRating != nil {
			v := *r.PlayerRating
			ratings = append(ratings, float64(v))
			if s.RatingMin == nil || v < *s.RatingMin {
				s.RatingMin = &v
			}
			if s.RatingMax == nil || v > *s.RatingMax {
				s.RatingMax = &v
			}
		}
		if r.OpponentRating != nil {
			oppRatings = append(oppRatings, float64(*r.OpponentRating))
		}
		if r.PlayerRating != nil && r.OpponentRating != nil {
			ratingGaps = append(ratingGaps, float64(*r.PlayerRating-*r.OpponentRating))
		}

		if r.Delta != nil {
			d := *r.Delta
			s.DeltaSum += d
			deltas = append(deltas, d)
			switch r.Outcome {
			case model.OutcomeWon:
				winDeltas = append(winDeltas, d)
			case model.OutcomeLost:
				lossDeltas = append(lossDeltas, d)
			}
		}

		pf, pa := r.PointsFor(), r.PointsAgainst()
		s.PointsWon += pf
		s.PointsLost += pa
		pointDiffs = append(pointDiffs, float64(pf-pa))

		if won, lost, ok := r.ResultSets(); ok {
			s.SetsWon += won
			s.SetsLost += lost
		}

		for _, set := range r.Sets {
			switch {
			case set.Won():
				pointsInWonSets = append(pointsInWonSets, float64(set.Player))
				concededWonSets = append(concededWonSets, float64(set.Opponent))
			case set.Lost():
				pointsInLostSets = append(pointsInLostSets, float64(set.Player))
				concededLost = append(concededLost, float64(set.Opponent))
			}
		}
	}

	s.DeltaSum = round2(s.DeltaSum)
	s.WinRate = pct(s.Wins, s.Matches)
	s.MeanRating = mean(ratings)
	s.MeanOpponentRating = mean(oppRatings)
	s.MeanRatingGap = mean(ratingGaps)
	s.DeltaMean = mean(deltas)
	s.DeltaMeanWins = mean(winDeltas)
	s.DeltaMeanLosses = mean(lossDeltas)
	s.DeltaStdDev = stddev(deltas)
	s.PointDiffMean = mean(pointDiffs)
	s.PointsWonPct = pct(s.PointsWon, s.PointsWon+s.PointsLost)
	s.SetsWonPct = pct(s.SetsWon, s.SetsWon+s.SetsLost)
	s.MeanPointsInSetsWon = mean(pointsInWonSets)
	s.MeanPointsConcededSetsWon = mean(concededWonSets)
	s.MeanPointsInSetsLost = mean(pointsInLostSets)
	s.MeanPointsConcededLost = mean(concededLost)

	summarizeBrackets(&s, recs)
	summarizeScorelines(&s, recs)
	summarizeRounds(&s, recs)
	summarizeTournaments(&s, recs)
	summarizeMomentum(&s, recs)
	summarizeTiers(&s, recs)
	s.Finals = placement(recs, "final")
	s.ThirdPlace = placement(recs, "3rd")

	return s
}

// summarizeBrackets partitions matches by relative opponent rating. Only
// matches with both ratings present participate; a strictly lower or
// higher rating puts the match in a bracket, equal ratings in neither.
func summarizeBrackets(s *Summary, recs []model.MatchRecord) {
	for _, r := range recs {
		if r.PlayerRating == nil || r.OpponentRating == nil {
			continue
		}
		switch {
		case *r.PlayerRating < *r.OpponentRating:
			switch r.Outcome {
			case model.OutcomeWon:
				s.WinsVsHigher++
			case model.OutcomeLost:
				s.LossesVsHigher++
			}
		case *r.PlayerRating > *r.OpponentRating:
			switch r.Outcome {
			case model.OutcomeWon:
				s.WinsVsLower++
			case model.OutcomeLost:
				s.LossesVsLower++
			}
		}
	}
	s.WinRateVsHigher = pct(s.WinsVsHigher, s.WinsVsHigher+s.LossesVsHigher)
	s.LossRateVsLower = pct(s.LossesVsLower, s.WinsVsLower+s.LossesVsLower)
}

func summarizeScorelines(s *Summary, recs []model.MatchRecord) {
	for _, line := range WinningScorelines {
		s.ScorelineWins[line] = 0
	}
	for _, line := range LosingScorelines {
		s.ScorelineLosses[line] = 0
	}
	for _, r := range recs {
		switch r.Outcome {
		case model.OutcomeWon:
			if _, tracked := s.ScorelineWins[r.Result]; tracked {
				s.ScorelineWins[r.Result]++
			}
		case model.OutcomeLost:
			if _, tracked := s.ScorelineLosses[r.Result]; tracked {
				s.ScorelineLosses[r.Result]++
			}
		}
	}
}

func summarizeRounds(s *Summary, recs []model.MatchRecord) {
	deltasByRound := make(map[string][]float64)
	for _, r := range recs {
		if r.Round == "" {
			continue
		}
		key := strings.ToLower(r.Round)
		rs := s.Rounds[key]
		rs.Played++
		switch r.Outcome {
		case model.OutcomeWon:
			rs.Wins++
		case model.OutcomeLost:
			rs.Losses++
		}
		if r.Delta != nil {
			deltasByRound[key] = append(deltasByRound[key], *r.Delta)
		}
		s.Rounds[key] = rs
	}
	for key, rs := range s.Rounds {
		rs.WinRate = pct(rs.Wins, rs.Played)
		rs.MeanDelta = mean(deltasByRound[key])
		s.Rounds[key] = rs
	}
}

// summarizeTournaments takes the chronologically last match of each
// (tournament, date) pair as the tournament's closing row: its position is
// the finishing position and its delta_total counts once.
func summarizeTournaments(s *Summary, recs []model.MatchRecord) {
	type tkey struct{ tournament, date string }
	index := make(map[tkey]int)
	var closing []model.MatchRecord
	for _, r := range recs {
		k := tkey{r.Tournament, model.DateKey(r.Date)}
		if pos, seen := index[k]; seen {
			closing[pos] = r // later match overwrites: recs are sorted
			continue
		}
		index[k] = len(closing)
		closing = append(closing, r)
	}

	s.Tournaments = len(closing)

	var positions, totals []float64
	for _, r := range closing {
		if r.DeltaTotal != nil {
			s.TournamentDeltaSum += *r.DeltaTotal
			totals = append(totals, *r.DeltaTotal)
		}
		if v, ok := r.NumericPosition(); ok {
			positions = append(positions, v)
			if v == 1 {
				s.TournamentsWon++
			}
		}
	}
	s.TournamentDeltaSum = round2(s.TournamentDeltaSum)
	s.MeanFinishPosition = mean(positions)
	s.TournamentsWonPct = pct(s.TournamentsWon, s.Tournaments)
	s.MeanTournamentDelta = mean(totals)
}

func summarizeMomentum(s *Summary, recs []model.MatchRecord) {
	if len(recs) < 2 {
		s.Momentum = MomentumInsufficient
		return
	}
	window := recs
	if len(window) > momentumWindow {
		window = window[len(window)-momentumWindow:]
	}
	sum := 0.0
	for _, r := range window {
		if r.Delta != nil {
			sum += *r.Delta
		}
	}
	sum = round2(sum)
	s.MomentumDeltaSum = &sum
	switch {
	case sum > momentumThreshold:
		s.Momentum = MomentumRising
	case sum < -momentumThreshold:
		s.Momentum = MomentumFalling
	default:
		s.Momentum = MomentumStable
	}
}

// summarizeTiers classifies each opponent against the player's own mean
// rating ±50 and reports the win rate inside each non-empty tier.
func summarizeTiers(s *Summary, recs []model.MatchRecord) {
	wins := make(map[Tier]int)
	decided := make(map[Tier]int)
	for _, r := range recs {
		t := classifyTier(s.MeanRating, r.OpponentRating)
		switch r.Outcome {
		case model.OutcomeWon:
			wins[t]++
			decided[t]++
		case model.OutcomeLost:
			decided[t]++
		}
	}
	for _, t := range Tiers {
		s.TierWinRates[t] = pct(wins[t], decided[t])
	}
}

func classifyTier(meanRating *float64, oppRating *int) Tier {
	if meanRating == nil || oppRating == nil {
		return TierUnknown
	}
	rating := float64(*oppRating)
	switch {
	case rating >= *meanRating+50:
		return TierTop
	case rating >= *meanRating-50:
		return TierMedium
	default:
		return TierLow
	}
}

// placement aggregates matches whose round equals the given label after
// trimming and lowercasing (exact match, unlike the clutch "contains
// final" rule).
func placement(recs []model.MatchRecord, round string) PlacementStats {
	var p PlacementStats
	decided := 0
	for _, r := range recs {
		if strings.ToLower(strings.TrimSpace(r.Round)) != round {
			continue
		}
		p.Played++
		switch r.Outcome {
		case model.OutcomeWon:
			p.Wins++
			decided++
		case model.OutcomeLost:
			decided++
		}
	}
	p.WinRate = pct(p.Wins, decided)
	return p
}
