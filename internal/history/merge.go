package history

import "github.com/pable/go-tt-stats/internal/model"

// MergeResult reports what a merge did.
type MergeResult struct {
	Added      int
	Duplicates int
}

// Merge folds a newly parsed batch into the existing history and returns
// the combined records. Deduplication runs on the match key (player, date,
// tournament, start time, opponent, round); when a key appears on both
// sides the existing record wins and the incoming one is counted as a
// duplicate. Repeats inside the incoming batch itself collapse the same
// way, first occurrence wins.
//
// Both sides get their outcomes backfilled before counting, so merging is
// idempotent: re-merging an already stored batch adds nothing.
func Merge(existing, incoming []model.MatchRecord) ([]model.MatchRecord, MergeResult) {
	BackfillOutcomes(existing)
	BackfillOutcomes(incoming)

	merged := make([]model.MatchRecord, 0, len(existing)+len(incoming))
	seen := make(map[model.Key]struct{}, len(existing)+len(incoming))

	for _, r := range existing {
		k := r.Key()
		if _, dup := seen[k]; dup {
			continue // persisted history is expected clean, but keep=first anyway
		}
		seen[k] = struct{}{}
		merged = append(merged, r)
	}
	for _, r := range incoming {
		k := r.Key()
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, r)
	}

	res := MergeResult{Added: len(merged) - len(existing)}
	res.Duplicates = len(incoming) - res.Added
	if res.Duplicates < 0 {
		res.Duplicates = 0
	}
	return merged, res
}

// BackfillOutcomes derives the Outcome of any record still marked unknown
// from its result string, in place. Already-derived outcomes are left
// untouched, so repeated application is a no-op.
func BackfillOutcomes(records []model.MatchRecord) {
	for i := range records {
		if records[i].Outcome != model.OutcomeUnknown {
			continue
		}
		records[i].Outcome = model.OutcomeFromResult(records[i].Result)
	}
}
