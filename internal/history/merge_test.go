package history

import (
	"testing"
	"time"

	"github.com/pable/go-tt-stats/internal/model"
)

func record(player, tournament, opponent, round, result string) model.MatchRecord {
	r := model.MatchRecord{
		Player:         player,
		Tournament:     tournament,
		Date:           time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		TournamentTime: "10:00",
		Opponent:       opponent,
		Round:          round,
		Result:         result,
	}
	r.Outcome = model.OutcomeFromResult(result)
	return r
}

func TestMergeAddsNewRecords(t *testing.T) {
	existing := []model.MatchRecord{
		record("Kantor", "Liga A", "Petrov", "1/4", "3:1"),
	}
	incoming := []model.MatchRecord{
		record("Kantor", "Liga A", "Sokolov", "1/2", "3:2"),
		record("Kantor", "Liga A", "Ivanov", "Final", "1:3"),
	}

	merged, res := Merge(existing, incoming)
	if len(merged) != 3 {
		t.Fatalf("merged = %d records, want 3", len(merged))
	}
	if res.Added != 2 || res.Duplicates != 0 {
		t.Errorf("result = %+v, want Added=2 Duplicates=0", res)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	batch := []model.MatchRecord{
		record("Kantor", "Liga A", "Petrov", "1/4", "3:1"),
		record("Kantor", "Liga A", "Sokolov", "1/2", "3:2"),
	}

	merged, _ := Merge(nil, batch)
	again, res := Merge(merged, batch)

	if len(again) != len(merged) {
		t.Fatalf("re-merge grew history: %d -> %d", len(merged), len(again))
	}
	if res.Added != 0 {
		t.Errorf("re-merge Added = %d, want 0", res.Added)
	}
	if res.Duplicates != len(batch) {
		t.Errorf("re-merge Duplicates = %d, want %d", res.Duplicates, len(batch))
	}
}

func TestMergeExistingWinsOnCollision(t *testing.T) {
	old := record("Kantor", "Liga A", "Petrov", "1/4", "3:1")
	newer := record("Kantor", "Liga A", "Petrov", "1/4", "3:1")
	newer.Delta = ptrFloat(9.9)

	merged, res := Merge([]model.MatchRecord{old}, []model.MatchRecord{newer})
	if len(merged) != 1 {
		t.Fatalf("merged = %d records, want 1", len(merged))
	}
	if merged[0].Delta != nil {
		t.Errorf("collision replaced the stored record; existing must win")
	}
	if res.Added != 0 || res.Duplicates != 1 {
		t.Errorf("result = %+v, want Added=0 Duplicates=1", res)
	}
}

func TestMergeDedupsWithinIncomingBatch(t *testing.T) {
	first := record("Kantor", "Liga A", "Petrov", "1/4", "3:1")
	repeat := record("Kantor", "Liga A", "Petrov", "1/4", "3:1")
	repeat.Delta = ptrFloat(1.0)

	merged, res := Merge(nil, []model.MatchRecord{first, repeat})
	if len(merged) != 1 {
		t.Fatalf("merged = %d records, want 1", len(merged))
	}
	if merged[0].Delta != nil {
		t.Errorf("within-batch dedup must keep the first occurrence")
	}
	if res.Added != 1 || res.Duplicates != 1 {
		t.Errorf("result = %+v, want Added=1 Duplicates=1", res)
	}
}

func TestMergeKeyDistinguishesRounds(t *testing.T) {
	// Same tournament, same opponent, different round: both are real
	// matches in a double-elimination bracket.
	a := record("Kantor", "Liga A", "Petrov", "1/2", "3:1")
	b := record("Kantor", "Liga A", "Petrov", "Final", "2:3")

	merged, res := Merge([]model.MatchRecord{a}, []model.MatchRecord{b})
	if len(merged) != 2 || res.Added != 1 {
		t.Errorf("got %d records (Added=%d), want both rounds kept", len(merged), res.Added)
	}
}

func TestMergeUnknownDatesStillDedup(t *testing.T) {
	a := record("Kantor", "weekly open", "Petrov", "1/4", "3:1")
	a.Date = time.Time{}
	b := record("Kantor", "weekly open", "Petrov", "1/4", "3:1")
	b.Date = time.Time{}

	merged, res := Merge([]model.MatchRecord{a}, []model.MatchRecord{b})
	if len(merged) != 1 || res.Duplicates != 1 {
		t.Errorf("got %d records (Duplicates=%d), want degraded-header records to collapse", len(merged), res.Duplicates)
	}
}

func TestBackfillOutcomes(t *testing.T) {
	records := []model.MatchRecord{
		{Result: "3:1"},
		{Result: "0:3"},
		{Result: ""},
		{Result: "3:0", Outcome: model.OutcomeLost}, // already set, must not change
	}

	BackfillOutcomes(records)
	BackfillOutcomes(records) // repeated application is a no-op

	want := []model.Outcome{model.OutcomeWon, model.OutcomeLost, model.OutcomeUnknown, model.OutcomeLost}
	for i, w := range want {
		if records[i].Outcome != w {
			t.Errorf("record %d outcome = %v, want %v", i, records[i].Outcome, w)
		}
	}
}

func ptrFloat(v float64) *float64 { return &v }
