package model

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Outcome is the tri-state result of a match from the record owner's side.
// Unknown means the result string was missing or unparsable, never "lost".
type Outcome int

const (
	OutcomeUnknown Outcome = 0
	OutcomeWon     Outcome = 1
	OutcomeLost    Outcome = 2
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "?"
	}
}

// OutcomeFromResult derives the match outcome from a "sets:sets" result
// string such as "3:1". An unparsable or empty string yields OutcomeUnknown.
func OutcomeFromResult(result string) Outcome {
	won, lost, ok := SplitResult(result)
	if !ok {
		return OutcomeUnknown
	}
	if won > lost {
		return OutcomeWon
	}
	return OutcomeLost
}

// SplitResult parses "a:b" into the player's and the opponent's set counts.
func SplitResult(result string) (player, opponent int, ok bool) {
	left, right, found := strings.Cut(strings.TrimSpace(result), ":")
	if !found {
		return 0, 0, false
	}
	p, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, false
	}
	o, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, false
	}
	return p, o, true
}

// SetScore is the point score of a single set, from the record owner's side.
type SetScore struct {
	Player   int
	Opponent int
}

// Won reports whether the record owner took this set. Point ties count for
// neither side.
func (s SetScore) Won() bool { return s.Player > s.Opponent }

// Lost reports whether the opponent took this set.
func (s SetScore) Lost() bool { return s.Opponent > s.Player }

// MatchRecord is one match from one player's exported history. Records are
// built by the parser and never mutated afterwards, except for the one-time
// Outcome backfill on legacy rows that predate outcome derivation.
//
// Pointer fields are nullable: a nil rating/delta means the source cell was
// missing or not coercible, and every consumer must treat it as absent
// rather than zero.
type MatchRecord struct {
	Player     string
	Tournament string
	// Date is the tournament's calendar date. The zero value means the
	// tournament header line did not match the expected pattern.
	Date time.Time
	// TournamentTime and MatchTime are "H:MM" wall-clock labels taken
	// verbatim from the sheet.
	TournamentTime string
	MatchTime      string

	PlayerRating   *int
	OpponentRating *int
	// Position is the finishing position token for the tournament, "" if
	// unavailable. It is not always numeric ("1-2" appears in exports).
	Position string

	// DeltaTotal is the net rating change for the whole tournament; it is
	// repeated on every match row of the block. Delta is this match's own
	// rating change.
	DeltaTotal *float64
	Delta      *float64

	Round    string
	Opponent string
	// Result is the normalized "sets:sets" score line, e.g. "3:2".
	Result string
	Sets   []SetScore

	Outcome Outcome
}

// Key identifies a match for deduplication. Two stored records may never
// share a key; fields outside the key are ignored when merging.
type Key struct {
	Player     string
	Date       string
	Tournament string
	StartTime  string
	Opponent   string
	Round      string
}

// Key returns the dedup key for the record. The date is rendered as
// ISO-8601, or "" when unknown, so records with degraded headers still
// deduplicate against each other.
func (r *MatchRecord) Key() Key {
	return Key{
		Player:     r.Player,
		Date:       DateKey(r.Date),
		Tournament: r.Tournament,
		StartTime:  r.TournamentTime,
		Opponent:   r.Opponent,
		Round:      r.Round,
	}
}

// DateKey formats a record date for keys and storage: "2006-01-02", or ""
// for the zero time.
func DateKey(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// PointsFor returns the total points the player scored across all sets.
func (r *MatchRecord) PointsFor() int {
	total := 0
	for _, s := range r.Sets {
		total += s.Player
	}
	return total
}

// PointsAgainst returns the total points the opponent scored across all sets.
func (r *MatchRecord) PointsAgainst() int {
	total := 0
	for _, s := range r.Sets {
		total += s.Opponent
	}
	return total
}

// ResultSets returns the set score from the Result string. The Result
// column is authoritative over len(Sets): exports occasionally omit
// per-set detail while still carrying the score line.
func (r *MatchRecord) ResultSets() (won, lost int, ok bool) {
	return SplitResult(r.Result)
}

// NumericPosition coerces the finishing position to a number, false when
// the token is missing or non-numeric.
func (r *MatchRecord) NumericPosition() (float64, bool) {
	if r.Position == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(r.Position, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SortChronological orders records by (date, match time) ascending, in
// place. Records without a date sort before dated ones. The sort is stable
// so same-day matches keep their sheet order. Every sequential analysis
// (streaks, momentum, evolution, last-match-per-tournament) must run on a
// slice sorted by this function.
func SortChronological(records []MatchRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.TournamentTime != b.TournamentTime {
			return clockLess(a.TournamentTime, b.TournamentTime)
		}
		return clockLess(a.MatchTime, b.MatchTime)
	})
}

// clockLess compares "H:MM" labels numerically so "9:30" < "10:05".
func clockLess(a, b string) bool {
	am, aok := clockMinutes(a)
	bm, bok := clockMinutes(b)
	if aok && bok {
		return am < bm
	}
	if aok != bok {
		return !aok // unparsable labels sort first, like missing dates
	}
	return a < b
}

func clockMinutes(s string) (int, bool) {
	h, m, found := strings.Cut(s, ":")
	if !found {
		return 0, false
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	mins, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return hours*60 + mins, true
}

// ByPlayer splits a flat record slice into per-player subsequences,
// preserving order within each player.
func ByPlayer(records []MatchRecord) map[string][]MatchRecord {
	out := make(map[string][]MatchRecord)
	for _, r := range records {
		out[r.Player] = append(out[r.Player], r)
	}
	return out
}

// FilterSince returns the records dated on or after cutoff. Records with
// an unknown date are excluded: a bounded window cannot place them.
func FilterSince(records []MatchRecord, cutoff time.Time) []MatchRecord {
	out := make([]MatchRecord, 0, len(records))
	for _, r := range records {
		if r.Date.IsZero() || r.Date.Before(cutoff) {
			continue
		}
		out = append(out, r)
	}
	return out
}
