package stats

import (
	"testing"
	"time"

	"github.com/pable/go-tt-stats/internal/model"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func day(n int) time.Time {
	return time.Date(2024, time.March, n, 0, 0, 0, 0, time.UTC)
}

func TestSummarizeCounts(t *testing.T) {
	s := Summarize([]model.MatchRecord{
		match("3:0", "11-5 11-6 11-7", "1/4"),
		match("3:2", "11-9 9-11 11-8 8-11 11-9", "1/2"),
		match("1:3", "11-9 8-11 9-11 7-11", "Final"),
		match("", "", "1/8"), // unparsable result
	})

	if s.Matches != 4 || s.Wins != 2 || s.Losses != 1 {
		t.Errorf("counts = %d/%d/%d, want 4/2/1", s.Matches, s.Wins, s.Losses)
	}
	// Win rate runs over all matches played, unknowns included.
	if s.WinRate == nil || *s.WinRate != 50 {
		t.Errorf("win rate = %v, want 50", s.WinRate)
	}
	if s.SetsWon != 7 || s.SetsLost != 5 {
		t.Errorf("sets = %d:%d, want 7:5", s.SetsWon, s.SetsLost)
	}
}

func TestSummarizeEmptyReportsNil(t *testing.T) {
	s := Summarize(nil)
	if s.WinRate != nil || s.MeanRating != nil || s.DeltaMean != nil || s.PointsWonPct != nil {
		t.Errorf("empty history must report nil aggregates, got %+v", s)
	}
	if s.Momentum != MomentumInsufficient {
		t.Errorf("momentum = %q, want %q", s.Momentum, MomentumInsufficient)
	}
}

func TestSummarizeRatings(t *testing.T) {
	a := match("3:0", "11-1 11-2 11-3", "1/4")
	a.PlayerRating, a.OpponentRating = intp(700), intp(680)
	b := match("0:3", "1-11 2-11 3-11", "1/2")
	b.PlayerRating, b.OpponentRating = intp(710), intp(740)
	c := match("3:1", "11-1 11-2 1-11 11-3", "Final") // no ratings at all

	s := Summarize([]model.MatchRecord{a, b, c})
	if s.MeanRating == nil || *s.MeanRating != 705 {
		t.Errorf("mean rating = %v, want 705", s.MeanRating)
	}
	if s.RatingMin == nil || *s.RatingMin != 700 || s.RatingMax == nil || *s.RatingMax != 710 {
		t.Errorf("rating span = %v..%v, want 700..710", s.RatingMin, s.RatingMax)
	}
	if s.MeanOpponentRating == nil || *s.MeanOpponentRating != 710 {
		t.Errorf("mean opponent rating = %v, want 710", s.MeanOpponentRating)
	}
	if s.MeanRatingGap == nil || *s.MeanRatingGap != -5 {
		t.Errorf("mean gap = %v, want -5", s.MeanRatingGap)
	}
}

func TestSummarizeBrackets(t *testing.T) {
	vsHigher := match("3:0", "11-1 11-2 11-3", "1/4")
	vsHigher.PlayerRating, vsHigher.OpponentRating = intp(700), intp(730)
	vsLower := match("0:3", "1-11 2-11 3-11", "1/2")
	vsLower.PlayerRating, vsLower.OpponentRating = intp(700), intp(660)
	equal := match("3:0", "11-1 11-2 11-3", "Final")
	equal.PlayerRating, equal.OpponentRating = intp(700), intp(700)

	s := Summarize([]model.MatchRecord{vsHigher, vsLower, equal})
	if s.WinsVsHigher != 1 || s.LossesVsHigher != 0 {
		t.Errorf("vs higher = %d/%d, want 1/0", s.WinsVsHigher, s.LossesVsHigher)
	}
	if s.WinRateVsHigher == nil || *s.WinRateVsHigher != 100 {
		t.Errorf("win rate vs higher = %v, want 100", s.WinRateVsHigher)
	}
	if s.WinsVsLower != 0 || s.LossesVsLower != 1 {
		t.Errorf("vs lower = %d/%d, want 0/1", s.WinsVsLower, s.LossesVsLower)
	}
	if s.LossRateVsLower == nil || *s.LossRateVsLower != 100 {
		t.Errorf("loss rate vs lower = %v, want 100", s.LossRateVsLower)
	}
}

func TestSummarizeEmptyBracketIsNil(t *testing.T) {
	// No rating pairs at all: both bracket rates must be nil, not 0.
	s := Summarize([]model.MatchRecord{match("3:0", "11-1 11-2 11-3", "1/4")})
	if s.WinRateVsHigher != nil {
		t.Errorf("win rate vs higher = %v, want nil for an empty bracket", s.WinRateVsHigher)
	}
	if s.LossRateVsLower != nil {
		t.Errorf("loss rate vs lower = %v, want nil for an empty bracket", s.LossRateVsLower)
	}
}

func TestSummarizeScorelines(t *testing.T) {
	s := Summarize([]model.MatchRecord{
		match("3:0", "11-1 11-2 11-3", "1/4"),
		match("3:0", "11-1 11-2 11-3", "1/2"),
		match("2:3", "11-9 9-11 11-8 8-11 9-11", "Final"),
	})

	if s.ScorelineWins["3:0"] != 2 {
		t.Errorf("3:0 wins = %d, want 2", s.ScorelineWins["3:0"])
	}
	if s.ScorelineLosses["2:3"] != 1 {
		t.Errorf("2:3 losses = %d, want 1", s.ScorelineLosses["2:3"])
	}
	// Untouched lines are zero-filled so reports always show the full grid.
	if n, ok := s.ScorelineWins["3:2"]; !ok || n != 0 {
		t.Errorf("3:2 wins = %d (present=%v), want zero-filled", n, ok)
	}
}

func TestSummarizeRounds(t *testing.T) {
	a := match("3:0", "11-1 11-2 11-3", "Final")
	a.Delta = floatp(6)
	b := match("0:3", "1-11 2-11 3-11", "final") // case-insensitive key
	b.Delta = floatp(-4)
	c := match("3:0", "11-1 11-2 11-3", "")

	s := Summarize([]model.MatchRecord{a, b, c})
	rs, ok := s.Rounds["final"]
	if !ok {
		t.Fatalf("no 'final' round bucket: %v", s.Rounds)
	}
	if rs.Played != 2 || rs.Wins != 1 || rs.Losses != 1 {
		t.Errorf("final bucket = %+v, want 2 played 1/1", rs)
	}
	if rs.WinRate == nil || *rs.WinRate != 50 {
		t.Errorf("final win rate = %v, want 50 over matches played", rs.WinRate)
	}
	if rs.MeanDelta == nil || *rs.MeanDelta != 1 {
		t.Errorf("final mean delta = %v, want 1", rs.MeanDelta)
	}
	if len(s.Rounds) != 1 {
		t.Errorf("rounds = %v, want unlabeled matches skipped", s.Rounds)
	}
}

func TestSummarizeTournamentsClosingRow(t *testing.T) {
	// Two matches of the same tournament: only the chronologically last row
	// contributes position and delta total.
	a := match("3:0", "11-1 11-2 11-3", "1/2")
	a.Tournament, a.Date, a.MatchTime = "Liga A", day(5), "10:00"
	a.Position, a.DeltaTotal = "3", floatp(12.5)
	b := match("3:1", "11-1 11-2 1-11 11-3", "Final")
	b.Tournament, b.Date, b.MatchTime = "Liga A", day(5), "11:30"
	b.Position, b.DeltaTotal = "1", floatp(12.5)
	c := match("0:3", "1-11 2-11 3-11", "1/4")
	c.Tournament, c.Date = "Liga B", day(6)
	c.Position, c.DeltaTotal = "9", floatp(-3)

	s := Summarize([]model.MatchRecord{a, b, c})
	if s.Tournaments != 2 {
		t.Errorf("tournaments = %d, want 2", s.Tournaments)
	}
	if s.TournamentDeltaSum != 9.5 {
		t.Errorf("tournament delta sum = %v, want 9.5: the repeated total counts once", s.TournamentDeltaSum)
	}
	if s.TournamentsWon != 1 {
		t.Errorf("tournaments won = %d, want 1 (position of the closing row)", s.TournamentsWon)
	}
	if s.MeanFinishPosition == nil || *s.MeanFinishPosition != 5 {
		t.Errorf("mean finish = %v, want 5", s.MeanFinishPosition)
	}
	if s.TournamentsWonPct == nil || *s.TournamentsWonPct != 50 {
		t.Errorf("tournaments won pct = %v, want 50", s.TournamentsWonPct)
	}
}

func TestSummarizeSameNameDifferentDates(t *testing.T) {
	a := match("3:0", "11-1 11-2 11-3", "Final")
	a.Tournament, a.Date = "weekly open", day(5)
	b := match("3:0", "11-1 11-2 11-3", "Final")
	b.Tournament, b.Date = "weekly open", day(12)

	s := Summarize([]model.MatchRecord{a, b})
	if s.Tournaments != 2 {
		t.Errorf("tournaments = %d, want 2: same name on another date is another event", s.Tournaments)
	}
}

func TestSummarizeMomentum(t *testing.T) {
	mk := func(deltas ...float64) []model.MatchRecord {
		recs := make([]model.MatchRecord, len(deltas))
		for i, d := range deltas {
			recs[i] = match("3:0", "11-1 11-2 11-3", "1/4")
			recs[i].Date = day(1 + i)
			recs[i].Delta = floatp(d)
		}
		return recs
	}

	if s := Summarize(mk(2, 2, 2)); s.Momentum != MomentumRising {
		t.Errorf("momentum = %q, want rising (sum 6 > 5)", s.Momentum)
	}
	if s := Summarize(mk(-2, -2, -2)); s.Momentum != MomentumFalling {
		t.Errorf("momentum = %q, want falling", s.Momentum)
	}
	if s := Summarize(mk(1, 1, 1)); s.Momentum != MomentumStable {
		t.Errorf("momentum = %q, want stable (|3| <= 5)", s.Momentum)
	}
	if s := Summarize(mk(9)); s.Momentum != MomentumInsufficient {
		t.Errorf("momentum = %q, want insufficient for one match", s.Momentum)
	}

	// Only the last ten matches participate.
	deltas := []float64{100, 100, 100, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	if s := Summarize(mk(deltas...)); s.Momentum != MomentumStable {
		t.Errorf("momentum = %q, want stable: older deltas fall outside the window", s.Momentum)
	}
}

func TestSummarizeTiers(t *testing.T) {
	// Mean rating 700: top >= 750, medium 650-749, low < 650.
	mk := func(opp int, result string) model.MatchRecord {
		r := match(result, "", "1/4")
		r.PlayerRating = intp(700)
		r.OpponentRating = intp(opp)
		return r
	}
	unrated := match("3:0", "", "1/4")
	unrated.PlayerRating = intp(700)

	s := Summarize([]model.MatchRecord{
		mk(760, "3:1"), mk(780, "1:3"),
		mk(700, "3:0"),
		mk(600, "0:3"),
		unrated,
	})

	if v := s.TierWinRates[TierTop]; v == nil || *v != 50 {
		t.Errorf("top tier = %v, want 50", v)
	}
	if v := s.TierWinRates[TierMedium]; v == nil || *v != 100 {
		t.Errorf("medium tier = %v, want 100", v)
	}
	if v := s.TierWinRates[TierLow]; v == nil || *v != 0 {
		t.Errorf("low tier = %v, want 0", v)
	}
	if v := s.TierWinRates[TierUnknown]; v == nil || *v != 100 {
		t.Errorf("unknown tier = %v, want 100", v)
	}
}

func TestClassifyTierBoundaries(t *testing.T) {
	m := floatp(700)
	cases := []struct {
		opp  int
		want Tier
	}{
		{750, TierTop}, {749, TierMedium}, {650, TierMedium}, {649, TierLow},
	}
	for _, c := range cases {
		if got := classifyTier(m, intp(c.opp)); got != c.want {
			t.Errorf("classifyTier(700, %d) = %v, want %v", c.opp, got, c.want)
		}
	}
	if got := classifyTier(nil, intp(700)); got != TierUnknown {
		t.Errorf("classifyTier(nil, 700) = %v, want unknown", got)
	}
	if got := classifyTier(m, nil); got != TierUnknown {
		t.Errorf("classifyTier(700, nil) = %v, want unknown", got)
	}
}

func TestSummarizePlacement(t *testing.T) {
	s := Summarize([]model.MatchRecord{
		match("3:0", "11-1 11-2 11-3", "Final"),
		match("0:3", "1-11 2-11 3-11", " final "), // trimmed, lowercased
		match("3:0", "11-1 11-2 11-3", "semifinal"), // not an exact match
		match("3:1", "11-1 11-2 1-11 11-3", "3rd"),
	})

	if s.Finals.Played != 2 || s.Finals.Wins != 1 {
		t.Errorf("finals = %+v, want 2 played 1 won", s.Finals)
	}
	if s.Finals.WinRate == nil || *s.Finals.WinRate != 50 {
		t.Errorf("finals win rate = %v, want 50", s.Finals.WinRate)
	}
	if s.ThirdPlace.Played != 1 || s.ThirdPlace.Wins != 1 {
		t.Errorf("3rd place = %+v, want 1 played 1 won", s.ThirdPlace)
	}
}

func TestSummarizePoints(t *testing.T) {
	s := Summarize([]model.MatchRecord{
		match("3:2", "11-9 9-11 11-8 8-11 11-9", "1/4"),
	})
	if s.PointsWon != 50 || s.PointsLost != 48 {
		t.Errorf("points = %d/%d, want 50/48", s.PointsWon, s.PointsLost)
	}
	if s.PointsWonPct == nil || *s.PointsWonPct != 51.02 {
		t.Errorf("points won pct = %v, want 51.02", s.PointsWonPct)
	}
	if s.MeanPointsInSetsWon == nil || *s.MeanPointsInSetsWon != 11 {
		t.Errorf("mean points in won sets = %v, want 11", s.MeanPointsInSetsWon)
	}
	if s.MeanPointsInSetsLost == nil || *s.MeanPointsInSetsLost != 8.5 {
		t.Errorf("mean points in lost sets = %v, want 8.5", s.MeanPointsInSetsLost)
	}
}
