// Package report renders analyzer output as terminal tables.
package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-tt-stats/internal/history"
	"github.com/pable/go-tt-stats/internal/stats"
)

// newTable builds a table with the house alignment: right-aligned cells,
// centered headers.
func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

// fmtOpt renders an optional 2-decimal value, "—" when absent.
func fmtOpt(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f", *v)
}

// fmtOptPct renders an optional percentage, "—" when absent.
func fmtOptPct(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f%%", *v)
}

func fmtOptInt(v *int) string {
	if v == nil {
		return "—"
	}
	return strconv.Itoa(*v)
}

// PrintSummary renders the global per-player summary as sectioned
// key-value tables.
func PrintSummary(w io.Writer, player string, s stats.Summary) {
	fmt.Fprintf(w, "\n=== Summary: %s ===\n\n", player)

	t := newTable(w)
	t.Header("MATCHES", "WINS", "LOSSES", "WIN%", "TOURNAMENTS", "MOMENTUM")
	t.Append(
		strconv.Itoa(s.Matches),
		strconv.Itoa(s.Wins),
		strconv.Itoa(s.Losses),
		fmtOptPct(s.WinRate),
		strconv.Itoa(s.Tournaments),
		s.Momentum,
	)
	t.Render()

	fmt.Fprintf(w, "\n--- Rating ---\n\n")
	rt := newTable(w)
	rt.Header("MEAN", "MIN", "MAX", "RIVAL MEAN", "GAP MEAN", "Δ SUM", "Δ/MATCH", "Δ/WIN", "Δ/LOSS", "Δ STDDEV", "TOURN Δ SUM")
	rt.Append(
		fmtOpt(s.MeanRating),
		fmtOptInt(s.RatingMin),
		fmtOptInt(s.RatingMax),
		fmtOpt(s.MeanOpponentRating),
		fmtOpt(s.MeanRatingGap),
		fmt.Sprintf("%.2f", s.DeltaSum),
		fmtOpt(s.DeltaMean),
		fmtOpt(s.DeltaMeanWins),
		fmtOpt(s.DeltaMeanLosses),
		fmtOpt(s.DeltaStdDev),
		fmt.Sprintf("%.2f", s.TournamentDeltaSum),
	)
	rt.Render()

	fmt.Fprintf(w, "\n--- Points & sets ---\n\n")
	pt := newTable(w)
	pt.Header("PTS WON", "PTS LOST", "PTS%", "DIFF MEAN", "SETS W", "SETS L", "SETS%", "PTS/SET W", "CONC/SET W", "PTS/SET L", "CONC/SET L")
	pt.Append(
		strconv.Itoa(s.PointsWon),
		strconv.Itoa(s.PointsLost),
		fmtOptPct(s.PointsWonPct),
		fmtOpt(s.PointDiffMean),
		strconv.Itoa(s.SetsWon),
		strconv.Itoa(s.SetsLost),
		fmtOptPct(s.SetsWonPct),
		fmtOpt(s.MeanPointsInSetsWon),
		fmtOpt(s.MeanPointsConcededSetsWon),
		fmtOpt(s.MeanPointsInSetsLost),
		fmtOpt(s.MeanPointsConcededLost),
	)
	pt.Render()

	fmt.Fprintf(w, "\n--- Versus rating brackets ---\n\n")
	bt := newTable(w)
	bt.Header("BRACKET", "WINS", "LOSSES", "RATE")
	bt.Append("rated above me", strconv.Itoa(s.WinsVsHigher), strconv.Itoa(s.LossesVsHigher), fmtOptPct(s.WinRateVsHigher))
	bt.Append("rated below me", strconv.Itoa(s.WinsVsLower), strconv.Itoa(s.LossesVsLower), fmtOptPct(s.LossRateVsLower))
	bt.Render()
	fmt.Fprintln(w, `("rated above me" shows win rate, "rated below me" shows loss rate)`)

	fmt.Fprintf(w, "\n--- Opponent tiers ---\n\n")
	tt := newTable(w)
	tt.Header("TIER", "WIN%")
	for _, tier := range stats.Tiers {
		tt.Append(tier.String(), fmtOptPct(s.TierWinRates[tier]))
	}
	tt.Render()

	fmt.Fprintf(w, "\n--- Score lines ---\n\n")
	st := newTable(w)
	st.Header("RESULT", "COUNT")
	for _, line := range stats.WinningScorelines {
		st.Append("won "+line, strconv.Itoa(s.ScorelineWins[line]))
	}
	for _, line := range stats.LosingScorelines {
		st.Append("lost "+line, strconv.Itoa(s.ScorelineLosses[line]))
	}
	st.Render()

	if len(s.Rounds) > 0 {
		fmt.Fprintf(w, "\n--- Rounds ---\n\n")
		rdt := newTable(w)
		rdt.Header("ROUND", "PLAYED", "WINS", "LOSSES", "WIN%", "Δ MEAN")
		for _, round := range sortedRoundKeys(s.Rounds) {
			rs := s.Rounds[round]
			rdt.Append(round, strconv.Itoa(rs.Played), strconv.Itoa(rs.Wins),
				strconv.Itoa(rs.Losses), fmtOptPct(rs.WinRate), fmtOpt(rs.MeanDelta))
		}
		rdt.Render()
	}

	fmt.Fprintf(w, "\n--- Tournaments ---\n\n")
	tot := newTable(w)
	tot.Header("MEAN POSITION", "WON", "WON%", "Δ TOTAL MEAN")
	tot.Append(fmtOpt(s.MeanFinishPosition), strconv.Itoa(s.TournamentsWon),
		fmtOptPct(s.TournamentsWonPct), fmtOpt(s.MeanTournamentDelta))
	tot.Render()

	fmt.Fprintf(w, "\n--- Finals & third place ---\n\n")
	ft := newTable(w)
	ft.Header("ROUND", "PLAYED", "WINS", "WIN%")
	ft.Append("final", strconv.Itoa(s.Finals.Played), strconv.Itoa(s.Finals.Wins), fmtOptPct(s.Finals.WinRate))
	ft.Append("3rd", strconv.Itoa(s.ThirdPlace.Played), strconv.Itoa(s.ThirdPlace.Wins), fmtOptPct(s.ThirdPlace.WinRate))
	ft.Render()
}

func sortedRoundKeys(rounds map[string]stats.RoundStats) []string {
	keys := make([]string, 0, len(rounds))
	for k := range rounds {
		keys = append(keys, k)
	}
	// Most played first, then name.
	sort.Slice(keys, func(i, j int) bool {
		if rounds[keys[i]].Played != rounds[keys[j]].Played {
			return rounds[keys[i]].Played > rounds[keys[j]].Played
		}
		return keys[i] < keys[j]
	})
	return keys
}

// PrintStreaks renders a player's streak profile.
func PrintStreaks(w io.Writer, player string, s stats.StreakStats) {
	fmt.Fprintf(w, "\n=== Streaks: %s (long-streak threshold %d) ===\n\n", player, s.Threshold)
	t := newTable(w)
	t.Header("MAX WINS", "MAX LOSSES", "LONG WIN RUNS", "LONG LOSS RUNS", "CURRENT")
	t.Append(
		strconv.Itoa(s.MaxWins),
		strconv.Itoa(s.MaxLosses),
		strconv.Itoa(s.LongWins),
		strconv.Itoa(s.LongLosses),
		fmt.Sprintf("%+d", s.Current),
	)
	t.Render()
}

// PrintClutch renders a player's clutch profile.
func PrintClutch(w io.Writer, player string, c stats.ClutchStats) {
	fmt.Fprintf(w, "\n=== Clutch: %s ===\n\n", player)
	t := newTable(w)
	t.Header("5-SET WIN%", "5-SET N", "FINALS WIN%", "FINALS N", "COMEBACKS", "COMEBACK%", "MATCH-POINT%")
	t.Append(
		fmtOptPct(c.FiveSetWinRate),
		strconv.Itoa(c.FiveSetMatches),
		fmtOptPct(c.FinalsWinRate),
		strconv.Itoa(c.FinalsMatches),
		strconv.Itoa(c.ComebackWins),
		fmt.Sprintf("%.2f%%", c.ComebackPct),
		fmtOptPct(c.MatchPointPct),
	)
	t.Render()
}

// PrintRivals renders the most-frequent-opponents table.
func PrintRivals(w io.Writer, player string, rivals []stats.RivalStats) {
	fmt.Fprintf(w, "\n=== Top rivals: %s ===\n\n", player)
	if len(rivals) == 0 {
		fmt.Fprintln(w, "No opponents on record.")
		return
	}
	t := newTable(w)
	t.Header("OPPONENT", "MATCHES", "WINS", "WIN RATIO")
	for _, r := range rivals {
		t.Append(r.Opponent, strconv.Itoa(r.Matches), strconv.Itoa(r.Wins), fmtOpt(r.WinRate))
	}
	t.Render()
}

// PrintEvolution renders the monthly rating series.
func PrintEvolution(w io.Writer, player string, series []stats.MonthlyRating) {
	fmt.Fprintf(w, "\n=== Rating evolution: %s ===\n\n", player)
	if len(series) == 0 {
		fmt.Fprintln(w, "No dated, rated matches on record.")
		return
	}
	t := newTable(w)
	t.Header("MONTH", "MEAN RATING", "MATCHES")
	for _, m := range series {
		t.Append(m.Month, fmt.Sprintf("%.2f", m.MeanRating), strconv.Itoa(m.Matches))
	}
	t.Render()
}

// PrintScore renders the composite score and its components.
func PrintScore(w io.Writer, player string, s stats.Score) {
	fmt.Fprintf(w, "\n=== Score: %s → %.2f / 10 ===\n\n", player, s.Overall)
	t := newTable(w)
	t.Header("COMPONENT", "SCORE", "WEIGHT")
	for _, row := range scoreRows(s) {
		t.Append(row.name, fmt.Sprintf("%.2f", row.score), fmt.Sprintf("%.2f", row.weight))
	}
	t.Render()
}

type scoreRow struct {
	name   string
	score  float64
	weight float64
}

func scoreRows(s stats.Score) []scoreRow {
	return []scoreRow{
		{"rating", s.Rating, 0.20},
		{"win rate by tier", s.Win, 0.22},
		{"match volume", s.Experience, 0.14},
		{"volatility", s.Volatility, 0.10},
		{"momentum", s.Momentum, 0.08},
		{"clutch", s.Clutch, 0.12},
		{"tournament experience", s.Tournaments, 0.08},
		{"max win streak", s.Streak, 0.06},
	}
}

// PrintComparison renders two players' scores side by side.
func PrintComparison(w io.Writer, a, b stats.PlayerReport) {
	fmt.Fprintf(w, "\n=== %s vs %s ===\n\n", a.Player, b.Player)
	t := newTable(w)
	t.Header("COMPONENT", a.Player, b.Player)
	rowsA, rowsB := scoreRows(a.Score), scoreRows(b.Score)
	for i := range rowsA {
		t.Append(rowsA[i].name,
			fmt.Sprintf("%.2f", rowsA[i].score),
			fmt.Sprintf("%.2f", rowsB[i].score))
	}
	t.Append("OVERALL",
		fmt.Sprintf("%.2f", a.Score.Overall),
		fmt.Sprintf("%.2f", b.Score.Overall))
	t.Render()

	ct := newTable(w)
	fmt.Fprintf(w, "\n--- Headline stats ---\n\n")
	ct.Header("STAT", a.Player, b.Player)
	ct.Append("matches", strconv.Itoa(a.Summary.Matches), strconv.Itoa(b.Summary.Matches))
	ct.Append("win%", fmtOptPct(a.Summary.WinRate), fmtOptPct(b.Summary.WinRate))
	ct.Append("mean rating", fmtOpt(a.Summary.MeanRating), fmtOpt(b.Summary.MeanRating))
	ct.Append("max win streak", strconv.Itoa(a.Streaks.MaxWins), strconv.Itoa(b.Streaks.MaxWins))
	ct.Append("finals win%", fmtOptPct(a.Clutch.FinalsWinRate), fmtOptPct(b.Clutch.FinalsWinRate))
	ct.Render()
}

// PrintRankings renders every player's composite score as a leaderboard.
func PrintRankings(w io.Writer, reports map[string]stats.PlayerReport) {
	fmt.Fprintf(w, "\n=== Rankings ===\n\n")
	t := newTable(w)
	t.Header("#", "PLAYER", "MATCHES", "WIN%", "MEAN RATING", "SCORE")
	for i, r := range rankReports(reports) {
		t.Append(
			strconv.Itoa(i+1),
			r.Player,
			strconv.Itoa(r.Summary.Matches),
			fmtOptPct(r.Summary.WinRate),
			fmtOpt(r.Summary.MeanRating),
			fmt.Sprintf("%.2f", r.Score.Overall),
		)
	}
	t.Render()
}

// rankReports orders reports by overall score, best first, name as the
// tiebreak.
func rankReports(reports map[string]stats.PlayerReport) []stats.PlayerReport {
	ranked := make([]stats.PlayerReport, 0, len(reports))
	for _, r := range reports {
		ranked = append(ranked, r)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score.Overall != ranked[j].Score.Overall {
			return ranked[i].Score.Overall > ranked[j].Score.Overall
		}
		return ranked[i].Player < ranked[j].Player
	})
	return ranked
}

// PrintPlayers renders the per-player history overview.
func PrintPlayers(w io.Writer, counts []history.PlayerCount) {
	t := newTable(w)
	t.Header("PLAYER", "MATCHES", "TOURNAMENTS", "FIRST", "LAST")
	for _, c := range counts {
		first, last := c.FirstDate, c.LastDate
		if first == "" {
			first = "—"
		}
		if last == "" {
			last = "—"
		}
		t.Append(c.Player, strconv.Itoa(c.Matches), strconv.Itoa(c.Tournaments), first, last)
	}
	t.Render()
}
