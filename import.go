package main

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// findColumn locates a header cell whose text contains any of the keywords,
// case-insensitively. The source sheets rename columns freely ("Time",
// "Kickoff", "Kick-off Time"), so exact-name lookup does not survive contact
// with real exports. Returns -1 when nothing matches.
func findColumn(headers []string, keywords ...string) int {
	for i, h := range headers {
		lower := strings.ToLower(strings.TrimSpace(h))
		for _, k := range keywords {
			if strings.Contains(lower, strings.ToLower(k)) {
				return i
			}
		}
	}
	return -1
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ImportResult tracks separate counters for each skip reason.
type ImportResult struct {
	TotalRows  int
	Inserted   int
	Duplicates int
	SkippedBad int
}

func (r ImportResult) Summary() string {
	return fmt.Sprintf("%d rows: %d new, %d duplicate, %d unusable",
		r.TotalRows, r.Inserted, r.Duplicates, r.SkippedBad)
}

// ImportFixturesCSV reads a fixtures-feed export and loads it into the
// fixtures table. Column positions are discovered from the header row; rows
// without at least a home side are dropped. Date/time cells are normalized
// here, at the boundary, so everything downstream sees canonical moments.
func ImportFixturesCSV(cfg Config, db *sql.DB, path string) (ImportResult, error) {
	headers, records, err := readCSV(path)
	if err != nil {
		return ImportResult{}, err
	}

	idx := struct{ date, time, league, home, away, score int }{
		date:   findColumn(headers, "date", "วันที่"),
		time:   findColumn(headers, "time", "kickoff"),
		league: findColumn(headers, "league", "program"),
		home:   findColumn(headers, "home", "team 1"),
		away:   findColumn(headers, "away", "team 2"),
		score:  findColumn(headers, "score", "ft", "ผล"),
	}
	if idx.home < 0 || idx.date < 0 {
		return ImportResult{}, fmt.Errorf("import fixtures: %s has no recognizable home/date columns", path)
	}

	source := filepath.Base(path)
	var result ImportResult
	var fixtures []Fixture
	for _, row := range records {
		result.TotalRows++
		home := cell(row, idx.home)
		if home == "" {
			result.SkippedBad++
			continue
		}
		fixtures = append(fixtures, Fixture{
			Moment: CombineDateTime(cell(row, idx.date), cell(row, idx.time), cfg.Location),
			League: cell(row, idx.league),
			Home:   home,
			Away:   cell(row, idx.away),
			Score:  cell(row, idx.score),
			Source: source,
		})
	}

	inserted, err := InsertFixtures(db, fixtures)
	result.Inserted = inserted
	result.Duplicates = len(fixtures) - inserted
	if err != nil {
		return result, fmt.Errorf("import fixtures: %w", err)
	}
	return result, nil
}

// ImportMatchLogsCSV loads an operator match-log export into the matches
// table. Same boundary rules as the fixtures import.
func ImportMatchLogsCSV(cfg Config, db *sql.DB, path string) (ImportResult, error) {
	headers, records, err := readCSV(path)
	if err != nil {
		return ImportResult{}, err
	}

	idx := struct{ date, time, league, home, away, channel, signal, status, start, stop int }{
		date:    findColumn(headers, "date", "วันที่"),
		time:    findColumn(headers, "time", "kickoff"),
		league:  findColumn(headers, "league", "program"),
		home:    findColumn(headers, "home", "team 1"),
		away:    findColumn(headers, "away", "team 2"),
		channel: findColumn(headers, "channel"),
		signal:  findColumn(headers, "signal"),
		status:  findColumn(headers, "status"),
		start:   findColumn(headers, "start image", "image in", "start"),
		stop:    findColumn(headers, "stop image", "image out", "stop"),
	}
	if idx.home < 0 || idx.date < 0 {
		return ImportResult{}, fmt.Errorf("import matches: %s has no recognizable home/date columns", path)
	}

	var result ImportResult
	var logs []MatchLog
	for _, row := range records {
		result.TotalRows++
		home := cell(row, idx.home)
		if home == "" {
			result.SkippedBad++
			continue
		}
		logs = append(logs, MatchLog{
			Moment:   CombineDateTime(cell(row, idx.date), cell(row, idx.time), cfg.Location),
			League:   cell(row, idx.league),
			Home:     home,
			Away:     cell(row, idx.away),
			Channel:  cell(row, idx.channel),
			Signal:   cell(row, idx.signal),
			Status:   cell(row, idx.status),
			StartImg: cell(row, idx.start),
			StopImg:  cell(row, idx.stop),
		})
	}

	inserted, err := InsertMatchLogs(db, logs)
	result.Inserted = inserted
	if err != nil {
		return result, fmt.Errorf("import matches: %w", err)
	}
	return result, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(all) < 1 {
		return nil, nil, fmt.Errorf("parse %s: empty file", path)
	}
	return all[0], all[1:], nil
}
