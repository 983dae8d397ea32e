// Package parser turns exported match-history workbooks into MatchRecords.
//
// The export format is loosely structured: each sheet belongs to one player
// and holds a run of tournament blocks. A block starts with a header line
// containing the token "Tournament", followed by a one-row player snapshot,
// a column-titles row, and then one row per match until the next header.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/pable/go-tt-stats/internal/model"
)

var (
	// tournamentHeaderRe captures "<day> <Mon> <year> <H:MM> Tournament <name>".
	tournamentHeaderRe = regexp.MustCompile(`^(\d{1,2} [A-Za-z]{3} \d{4}) (\d{1,2}:\d{2})\s*Tournament (.+)`)
	// matchTimeRe gates match rows: the first cell is a bare clock label.
	matchTimeRe = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
)

const headerDateLayout = "2 Jan 2006"

// Parser reads match-history sheets. The zero value is usable; New wires a
// logger for per-sheet diagnostics.
type Parser struct {
	log zerolog.Logger
}

// New returns a Parser logging through the given logger.
func New(log zerolog.Logger) *Parser {
	return &Parser{log: log}
}

// ParseWorkbook reads an .xlsx export and parses every sheet. The sheet
// name is the player's identity. Only opening or reading the file itself
// is fatal; malformed content degrades per row or per block.
func (p *Parser) ParseWorkbook(path string) (map[string][]model.MatchRecord, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	histories := make(map[string][]model.MatchRecord)
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		records := p.ParseSheet(sheet, rows)
		histories[sheet] = records
		p.log.Debug().
			Str("player", sheet).
			Int("rows", len(rows)).
			Int("matches", len(records)).
			Msg("sheet parsed")
	}
	return histories, nil
}

// snapshot carries the tournament-block context applied to every match row
// within the block.
type snapshot struct {
	date           time.Time
	tournamentTime string
	tournament     string
	playerRating   *int
	position       string
	deltaTotal     *float64
}

// ParseSheet scans one player's raw rows and returns the matches found, in
// row order. It never fails: a bad match row is dropped, a malformed
// tournament header degrades to an unknown date with the raw cell as the
// tournament name.
func (p *Parser) ParseSheet(player string, rows [][]string) []model.MatchRecord {
	var records []model.MatchRecord

	i := 0
	for i < len(rows) {
		first := cell(rows[i], 0)
		if !strings.Contains(first, "Tournament") {
			i++
			continue
		}

		snap := p.parseHeader(player, first)
		if i+1 < len(rows) {
			p.parseSnapshotRow(&snap, rows[i+1])
		}

		// Skip the snapshot row and the column-titles row.
		i += 3

		for i < len(rows) {
			row := rows[i]
			if strings.Contains(cell(row, 0), "Tournament") {
				break // next block starts here
			}
			if matchTimeRe.MatchString(cell(row, 0)) {
				rec, err := newMatchRecord(player, snap, row)
				if err != nil {
					p.log.Debug().
						Str("player", player).
						Int("row", i).
						Err(err).
						Msg("match row dropped")
				} else {
					records = append(records, rec)
				}
			}
			i++
		}
	}
	return records
}

// parseHeader extracts date, start time and tournament name from a block
// header cell, falling back to the raw cell as the name when the pattern
// does not match.
func (p *Parser) parseHeader(player, raw string) snapshot {
	m := tournamentHeaderRe.FindStringSubmatch(raw)
	if m == nil {
		p.log.Debug().Str("player", player).Str("header", raw).Msg("degraded tournament header")
		return snapshot{tournament: raw}
	}
	snap := snapshot{
		tournamentTime: m[2],
		tournament:     strings.TrimSpace(m[3]),
	}
	date, err := time.Parse(headerDateLayout, m[1])
	if err == nil {
		snap.date = date
	}
	return snap
}

// parseSnapshotRow fills the player's per-tournament snapshot: rating in
// column 4, position in column 5 (first token only), total rating change
// in column 8. Non-coercible cells leave the field absent.
func (p *Parser) parseSnapshotRow(snap *snapshot, row []string) {
	snap.playerRating = parseRating(cell(row, 4))
	if fields := strings.Fields(cell(row, 5)); len(fields) > 0 {
		snap.position = fields[0]
	}
	snap.deltaTotal = parseDelta(cell(row, 8))
}

// newMatchRecord builds one MatchRecord from a match row and its block
// snapshot. It fails only when the row is too short to name an opponent;
// every field-level coercion problem degrades to an absent field instead.
func newMatchRecord(player string, snap snapshot, row []string) (model.MatchRecord, error) {
	if len(row) < 3 {
		return model.MatchRecord{}, fmt.Errorf("row has %d cells, want at least 3", len(row))
	}

	rec := model.MatchRecord{
		Player:         player,
		Tournament:     snap.tournament,
		Date:           snap.date,
		TournamentTime: snap.tournamentTime,
		MatchTime:      cell(row, 0),
		PlayerRating:   snap.playerRating,
		Position:       snap.position,
		DeltaTotal:     snap.deltaTotal,
		Round:          strings.TrimSpace(cell(row, 1)),
		Opponent:       strings.TrimSpace(cell(row, 2)),
		OpponentRating: parseRating(cell(row, 4)),
		Result:         normalizeResult(cell(row, 6)),
		Sets:           ParseSets(cell(row, 7)),
		Delta:          parseDelta(cell(row, 8)),
	}
	rec.Outcome = model.OutcomeFromResult(rec.Result)
	return rec, nil
}

// ParseSets parses the compact per-set score list, e.g. "11-9 9-11 11-8".
// Tokens that do not parse as two integers are skipped; a fully
// unparsable cell yields an empty slice, not an error.
func ParseSets(raw string) []model.SetScore {
	raw = strings.ReplaceAll(raw, " ", " ")
	var sets []model.SetScore
	for _, token := range strings.Fields(raw) {
		left, right, found := strings.Cut(token, "-")
		if !found {
			continue
		}
		p, err := strconv.Atoi(left)
		if err != nil {
			continue
		}
		o, err := strconv.Atoi(right)
		if err != nil {
			continue
		}
		sets = append(sets, model.SetScore{Player: p, Opponent: o})
	}
	return sets
}

// normalizeResult strips whitespace inside the score line ("3 : 1" → "3:1").
func normalizeResult(raw string) string {
	return strings.Join(strings.Fields(raw), "")
}

// parseRating coerces a rating cell: digits only, otherwise absent.
func parseRating(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return nil
		}
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// parseDelta coerces a rating-change cell, normalizing the decimal comma
// the exporter uses ("-4,5" → -4.5).
func parseDelta(raw string) *float64 {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// cell returns column i of a row, "" when the row is shorter than that.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}
