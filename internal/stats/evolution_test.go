package stats

import (
	"testing"
	"time"

	"github.com/pable/go-tt-stats/internal/model"
)

func ratedOn(year int, month time.Month, dayOfMonth, rating int) model.MatchRecord {
	return model.MatchRecord{
		Player:       "Kantor",
		Date:         time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC),
		PlayerRating: intp(rating),
	}
}

func TestEvolution(t *testing.T) {
	series := Evolution([]model.MatchRecord{
		ratedOn(2024, time.February, 10, 710),
		ratedOn(2024, time.January, 5, 700),
		ratedOn(2024, time.January, 20, 706),
		{Player: "Kantor", Date: time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)}, // no rating
		{Player: "Kantor", PlayerRating: intp(900)},                                       // no date
	})

	if len(series) != 2 {
		t.Fatalf("got %d months, want 2", len(series))
	}
	jan := series[0]
	if jan.Month != "2024-01" || jan.Matches != 2 || jan.MeanRating != 703 {
		t.Errorf("january = %+v, want 2024-01 mean 703 over 2 matches", jan)
	}
	if series[1].Month != "2024-02" {
		t.Errorf("series not sorted oldest first: %+v", series)
	}
}

func TestEvolutionEmpty(t *testing.T) {
	if series := Evolution(nil); len(series) != 0 {
		t.Errorf("got %d months for empty history", len(series))
	}
}

func TestRecentMonths(t *testing.T) {
	series := []MonthlyRating{
		{Month: "2024-01"}, {Month: "2024-02"}, {Month: "2024-03"},
	}
	if got := RecentMonths(series, 2); len(got) != 2 || got[0].Month != "2024-02" {
		t.Errorf("RecentMonths(2) = %+v, want the last two", got)
	}
	if got := RecentMonths(series, 0); len(got) != 3 {
		t.Errorf("RecentMonths(0) = %+v, want the whole series", got)
	}
	if got := RecentMonths(series, 10); len(got) != 3 {
		t.Errorf("RecentMonths(10) = %+v, want the whole series", got)
	}
}
