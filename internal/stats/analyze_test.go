package stats

import (
	"context"
	"testing"

	"github.com/pable/go-tt-stats/internal/model"
)

func TestAnalyze(t *testing.T) {
	records := []model.MatchRecord{
		match("3:0", "11-1 11-2 11-3", "1/4"),
		match("3:2", "11-9 9-11 11-8 8-11 11-9", "Final"),
		match("1:3", "11-9 8-11 9-11 7-11", "1/2"),
	}

	rep := Analyze("Kantor", records, 5)
	if rep.Player != "Kantor" {
		t.Errorf("player = %q", rep.Player)
	}
	if rep.Summary.Matches != 3 || rep.Summary.Wins != 2 {
		t.Errorf("summary = %d matches %d wins, want 3/2", rep.Summary.Matches, rep.Summary.Wins)
	}
	if rep.Streaks.MaxWins != 2 {
		t.Errorf("max wins = %d, want 2", rep.Streaks.MaxWins)
	}
	if rep.Clutch.FiveSetMatches != 1 {
		t.Errorf("five-set matches = %d, want 1", rep.Clutch.FiveSetMatches)
	}
	if len(rep.Rivals) != 1 || rep.Rivals[0].Matches != 3 {
		t.Errorf("rivals = %+v, want one rival with 3 matches", rep.Rivals)
	}
	if rep.Score.Overall == 0 {
		t.Errorf("score not computed: %+v", rep.Score)
	}
}

func TestAnalyzeAll(t *testing.T) {
	records := []model.MatchRecord{
		vs("Petrov", "3:0"),
		vs("Petrov", "3:1"),
		{Player: "Petrov", Opponent: "Kantor", Result: "0:3", Outcome: model.OutcomeLost},
	}

	reports, err := AnalyzeAll(context.Background(), records, 5)
	if err != nil {
		t.Fatalf("analyze all: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("got %d reports, want 2", len(reports))
	}
	if reports["Kantor"].Summary.Matches != 2 {
		t.Errorf("Kantor matches = %d, want 2", reports["Kantor"].Summary.Matches)
	}
	if reports["Petrov"].Summary.Losses != 1 {
		t.Errorf("Petrov losses = %d, want 1", reports["Petrov"].Summary.Losses)
	}
}

func TestAnalyzeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := AnalyzeAll(ctx, []model.MatchRecord{vs("Petrov", "3:0")}, 5)
	if err == nil {
		t.Fatal("want error from a cancelled context")
	}
}
