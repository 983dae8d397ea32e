package stats

import (
	"sort"

	"github.com/pable/go-tt-stats/internal/model"
)

// MonthlyRating is the mean player rating over one calendar month.
type MonthlyRating struct {
	Month      string // "2006-01"
	MeanRating float64
	Matches    int
}

// Evolution groups a player's rating by calendar month, oldest first.
// Records without a parsable date or without a rating are skipped.
func Evolution(records []model.MatchRecord) []MonthlyRating {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		if r.Date.IsZero() || r.PlayerRating == nil {
			continue
		}
		month := r.Date.Format("2006-01")
		sums[month] += float64(*r.PlayerRating)
		counts[month]++
	}

	series := make([]MonthlyRating, 0, len(sums))
	for month, sum := range sums {
		series = append(series, MonthlyRating{
			Month:      month,
			MeanRating: round2(sum / float64(counts[month])),
			Matches:    counts[month],
		})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Month < series[j].Month })
	return series
}

// RecentMonths keeps the most recent n entries of an Evolution series; the
// whole series when n <= 0 or the series is shorter.
func RecentMonths(series []MonthlyRating, n int) []MonthlyRating {
	if n <= 0 || len(series) <= n {
		return series
	}
	return series[len(series)-n:]
}
