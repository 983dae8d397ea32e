package stats

import "github.com/pable/go-tt-stats/internal/model"

// Score is the composite 1-10 rating with its component sub-scores.
type Score struct {
	Overall float64

	Rating      float64
	Win         float64
	Experience  float64
	Volatility  float64
	Momentum    float64
	Clutch      float64
	Tournaments float64
	Streak      float64
}

// Component weights of the composite score. They sum to 1.0.
const (
	weightRating      = 0.20
	weightWin         = 0.22
	weightExperience  = 0.14
	weightVolatility  = 0.10
	weightMomentum    = 0.08
	weightClutch      = 0.12
	weightTournaments = 0.08
	weightStreak      = 0.06
)

// Fallbacks used when a player has no rating or delta sample at all; they
// sit at the middle of the usual 600-800 rating band and a typical delta
// spread.
const (
	fallbackMeanRating = 650.0
	fallbackVolatility = 8.0
)

// smallSampleCutoff triggers the clutch-score penalty when either the
// five-set or the finals sample is thinner than this.
const smallSampleCutoff = 10

// ComputeScore rates one player's (already time-filtered) records.
func ComputeScore(records []model.MatchRecord) Score {
	summary := Summarize(records)
	return ScoreFrom(summary, Clutch(records), Streaks(records))
}

// ScoreFrom combines precomputed analyzer outputs into the composite
// score, for callers that already ran the analyzers.
func ScoreFrom(summary Summary, clutch ClutchStats, streaks StreakStats) Score {
	s := Score{
		Rating:      ratingScore(summary),
		Win:         winScore(summary),
		Experience:  experienceScore(summary.Matches),
		Volatility:  volatilityScore(summary.DeltaStdDev),
		Momentum:    momentumScore(summary.Momentum),
		Clutch:      clutchScore(clutch),
		Tournaments: tournamentsScore(summary.Tournaments),
		Streak:      streakScore(streaks.MaxWins),
	}
	s.Overall = round2(weightRating*s.Rating +
		weightWin*s.Win +
		weightExperience*s.Experience +
		weightVolatility*s.Volatility +
		weightMomentum*s.Momentum +
		weightClutch*s.Clutch +
		weightTournaments*s.Tournaments +
		weightStreak*s.Streak)
	return s
}

// ratingScore maps the 600-750 mean-rating band onto [3,10].
func ratingScore(summary Summary) float64 {
	rating := fallbackMeanRating
	if summary.MeanRating != nil {
		rating = *summary.MeanRating
	}
	return clip((rating-600)/15, 3, 10)
}

// winScore blends the tier win rates, weighting wins against stronger
// opposition more heavily the lower the player's own rating sits. An
// empty tier contributes zero.
func winScore(summary Summary) float64 {
	rating := fallbackMeanRating
	if summary.MeanRating != nil {
		rating = *summary.MeanRating
	}
	var wTop, wMed, wLow float64
	switch {
	case rating >= 720:
		wTop, wMed, wLow = 1.5, 1.2, 1.0
	case rating >= 680:
		wTop, wMed, wLow = 2.0, 1.3, 1.0
	default:
		wTop, wMed, wLow = 2.5, 1.5, 1.0
	}

	top := zeroIfNil(summary.TierWinRates[TierTop])
	med := zeroIfNil(summary.TierWinRates[TierMedium])
	low := zeroIfNil(summary.TierWinRates[TierLow])

	blended := ((top/10)*wTop + (med/10)*wMed + (low/10)*wLow) / (wTop + wMed + wLow) * 10
	return clip(blended, 0, 10)
}

func experienceScore(matches int) float64 {
	switch {
	case matches >= 1500:
		return 10
	case matches >= 500:
		return 8
	case matches >= 200:
		return 6
	case matches >= 100:
		return 5
	case matches >= 50:
		return 3
	default:
		return 2
	}
}

// volatilityScore rewards a steady delta: the lower the spread, the higher
// the score.
func volatilityScore(deltaStdDev *float64) float64 {
	vol := fallbackVolatility
	if deltaStdDev != nil {
		vol = *deltaStdDev
	}
	switch {
	case vol <= 4:
		return 10
	case vol <= 6:
		return 7
	case vol <= 8:
		return 5
	case vol <= 10:
		return 2
	default:
		return 0
	}
}

func momentumScore(momentum string) float64 {
	switch momentum {
	case MomentumRising:
		return 8
	case MomentumFalling:
		return 4
	default:
		return 6
	}
}

// clutchScore averages the available clutch percentages on a 0-10 scale,
// then discounts thin samples.
func clutchScore(c ClutchStats) float64 {
	var vals []float64
	if c.FiveSetWinRate != nil {
		vals = append(vals, *c.FiveSetWinRate/10)
	}
	if c.FinalsWinRate != nil {
		vals = append(vals, *c.FinalsWinRate/10)
	}
	if c.MatchPointPct != nil {
		vals = append(vals, *c.MatchPointPct/10)
	}

	score := 5.0
	if len(vals) > 0 {
		sum := 0.0
		for _, v := range vals {
			sum += v
		}
		score = clip(sum/float64(len(vals)), 0, 10)
	}
	if c.FiveSetMatches < smallSampleCutoff || c.FinalsMatches < smallSampleCutoff {
		score *= 0.8
	}
	return score
}

func tournamentsScore(tournaments int) float64 {
	switch {
	case tournaments >= 350:
		return 10
	case tournaments >= 100:
		return 7
	case tournaments >= 50:
		return 5
	case tournaments >= 20:
		return 3
	default:
		return 2
	}
}

func streakScore(maxWins int) float64 {
	switch {
	case maxWins >= 15:
		return 10
	case maxWins >= 10:
		return 8
	case maxWins >= 5:
		return 5
	default:
		return 2
	}
}

func zeroIfNil(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
