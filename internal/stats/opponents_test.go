package stats

import (
	"testing"

	"github.com/pable/go-tt-stats/internal/model"
)

func vs(opponent, result string) model.MatchRecord {
	r := model.MatchRecord{Player: "Kantor", Opponent: opponent, Result: result}
	r.Outcome = model.OutcomeFromResult(result)
	return r
}

func TestOpponents(t *testing.T) {
	rivals := Opponents([]model.MatchRecord{
		vs("Petrov", "3:0"), vs("Petrov", "1:3"), vs("Petrov", "3:2"),
		vs("Sokolov", "0:3"), vs("Sokolov", "0:3"),
		vs("Ivanov", "3:1"),
	}, 5)

	if len(rivals) != 3 {
		t.Fatalf("got %d rivals, want 3", len(rivals))
	}
	top := rivals[0]
	if top.Opponent != "Petrov" || top.Matches != 3 || top.Wins != 2 {
		t.Errorf("top rival = %+v, want Petrov 3/2", top)
	}
	if top.WinRate == nil || *top.WinRate != 0.67 {
		t.Errorf("top win rate = %v, want 0.67 ratio", top.WinRate)
	}
	if rivals[1].Opponent != "Sokolov" {
		t.Errorf("second rival = %q, want Sokolov", rivals[1].Opponent)
	}
	if rivals[1].WinRate == nil || *rivals[1].WinRate != 0 {
		t.Errorf("winless rival rate = %v, want 0, not nil", rivals[1].WinRate)
	}
}

func TestOpponentsCountTieBreaksAlphabetically(t *testing.T) {
	rivals := Opponents([]model.MatchRecord{
		vs("Zotov", "3:0"), vs("Abramov", "3:0"),
	}, 5)
	if rivals[0].Opponent != "Abramov" || rivals[1].Opponent != "Zotov" {
		t.Errorf("order = %q, %q, want alphabetical on equal counts", rivals[0].Opponent, rivals[1].Opponent)
	}
}

func TestOpponentsTruncatesToTopN(t *testing.T) {
	records := []model.MatchRecord{
		vs("A", "3:0"), vs("B", "3:0"), vs("C", "3:0"), vs("D", "3:0"),
	}
	if got := Opponents(records, 2); len(got) != 2 {
		t.Errorf("got %d rivals, want 2", len(got))
	}
	// Non-positive topN falls back to the default head size.
	if got := Opponents(records, 0); len(got) != 4 {
		t.Errorf("got %d rivals with topN=0, want all 4 under the default of %d", len(Opponents(records, 0)), DefaultTopRivals)
	}
}

func TestOpponentsUndecidedOnlyRivalHasNilRate(t *testing.T) {
	rivals := Opponents([]model.MatchRecord{vs("Petrov", "")}, 5)
	if len(rivals) != 1 || rivals[0].Matches != 1 {
		t.Fatalf("rivals = %+v", rivals)
	}
	if rivals[0].WinRate != nil {
		t.Errorf("win rate = %v, want nil when no match was decided", rivals[0].WinRate)
	}
}

func TestOpponentsSkipsUnnamed(t *testing.T) {
	rivals := Opponents([]model.MatchRecord{vs("", "3:0"), vs("Petrov", "3:0")}, 5)
	if len(rivals) != 1 || rivals[0].Opponent != "Petrov" {
		t.Errorf("rivals = %+v, want the unnamed opponent skipped", rivals)
	}
}
