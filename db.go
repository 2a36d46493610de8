package main

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	schema := `
	CREATE TABLE IF NOT EXISTS fixtures (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		date_key  TEXT NOT NULL DEFAULT '',
		time_key  TEXT NOT NULL DEFAULT '',
		league    TEXT NOT NULL DEFAULT '',
		home      TEXT NOT NULL DEFAULT '',
		away      TEXT NOT NULL DEFAULT '',
		score     TEXT NOT NULL DEFAULT '',
		source    TEXT NOT NULL DEFAULT '',
		added_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_fixtures_date ON fixtures(date_key, time_key);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_fixtures_dedup
		ON fixtures(date_key, time_key, home, away);

	CREATE TABLE IF NOT EXISTS matches (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		date_key  TEXT NOT NULL DEFAULT '',
		time_key  TEXT NOT NULL DEFAULT '',
		league    TEXT NOT NULL DEFAULT '',
		home      TEXT NOT NULL DEFAULT '',
		away      TEXT NOT NULL DEFAULT '',
		channel   TEXT NOT NULL DEFAULT '',
		signal    TEXT NOT NULL DEFAULT '',
		status    TEXT NOT NULL DEFAULT '',
		start_img TEXT NOT NULL DEFAULT '',
		stop_img  TEXT NOT NULL DEFAULT '',
		added_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(date_key, time_key);

	CREATE TABLE IF NOT EXISTS tickets (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		number          TEXT NOT NULL UNIQUE,
		type            TEXT NOT NULL DEFAULT 'Incident',
		status          TEXT NOT NULL DEFAULT 'Open',
		severity        TEXT NOT NULL DEFAULT 'Normal',
		category        TEXT NOT NULL DEFAULT '',
		subject         TEXT NOT NULL DEFAULT '',
		detail          TEXT NOT NULL DEFAULT '',
		action          TEXT NOT NULL DEFAULT '',
		resolved_detail TEXT NOT NULL DEFAULT '',
		assignee        TEXT NOT NULL DEFAULT '',
		created_date    TEXT NOT NULL DEFAULT '',
		created_time    TEXT NOT NULL DEFAULT '',
		resolved_date   TEXT NOT NULL DEFAULT '',
		resolved_time   TEXT NOT NULL DEFAULT '',
		created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_tickets_created ON tickets(created_date);
	CREATE INDEX IF NOT EXISTS idx_tickets_resolved ON tickets(resolved_date);

	CREATE TABLE IF NOT EXISTS shift_reports (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		report_date TEXT NOT NULL,
		shift       TEXT NOT NULL DEFAULT '',
		reporter    TEXT NOT NULL DEFAULT '',
		body        TEXT NOT NULL DEFAULT '',
		file_path   TEXT NOT NULL DEFAULT '',
		chat_target TEXT NOT NULL DEFAULT '',
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_shift_reports_date ON shift_reports(report_date);
	`
	if _, err = db.Exec(schema); err != nil {
		return nil, err
	}
	return db, nil
}

// --- Fixtures ---

// InsertFixtures loads a batch, skipping rows already present (the feed
// repeats fixtures across exports). Returns how many were actually new.
func InsertFixtures(db *sql.DB, fixtures []Fixture) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT OR IGNORE INTO fixtures (date_key, time_key, league, home, away, score, source)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, f := range fixtures {
		res, err := stmt.Exec(f.Moment.DateKey, f.Moment.TimeKey, f.League, f.Home, f.Away, f.Score, f.Source)
		if err != nil {
			return inserted, err
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	return inserted, tx.Commit()
}

// GetRecentFixtures returns the most recently added rows, capped at limit.
// The feed grows forever; reconciliation only ever needs the recent tail.
func GetRecentFixtures(db *sql.DB, limit int) ([]Fixture, error) {
	rows, err := db.Query(
		`SELECT id, date_key, time_key, league, home, away, score, source, added_at
		 FROM fixtures ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Fixture
	for rows.Next() {
		var f Fixture
		if err := rows.Scan(
			&f.ID, &f.Moment.DateKey, &f.Moment.TimeKey, &f.League,
			&f.Home, &f.Away, &f.Score, &f.Source, &f.AddedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// --- Matches ---

func InsertMatchLogs(db *sql.DB, logs []MatchLog) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO matches (date_key, time_key, league, home, away, channel, signal, status, start_img, stop_img)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	inserted := 0
	for _, l := range logs {
		if _, err := stmt.Exec(
			l.Moment.DateKey, l.Moment.TimeKey, l.League, l.Home, l.Away,
			l.Channel, l.Signal, l.Status, l.StartImg, l.StopImg,
		); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, tx.Commit()
}

func GetRecentMatchLogs(db *sql.DB, limit int) ([]MatchLog, error) {
	rows, err := db.Query(
		`SELECT id, date_key, time_key, league, home, away, channel, signal, status, start_img, stop_img, added_at
		 FROM matches ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MatchLog
	for rows.Next() {
		var l MatchLog
		if err := rows.Scan(
			&l.ID, &l.Moment.DateKey, &l.Moment.TimeKey, &l.League, &l.Home, &l.Away,
			&l.Channel, &l.Signal, &l.Status, &l.StartImg, &l.StopImg, &l.AddedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// --- Tickets ---

func InsertTicket(db *sql.DB, t Ticket) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO tickets (number, type, status, severity, category, subject, detail, action,
		                      resolved_detail, assignee, created_date, created_time, resolved_date, resolved_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Number, t.Type, t.Status, t.Severity, t.Category, t.Subject, t.Detail, t.Action,
		t.ResolvedDetail, t.Assignee,
		t.CreatedMoment.DateKey, t.CreatedMoment.TimeKey,
		t.ResolvedMoment.DateKey, t.ResolvedMoment.TimeKey,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func TicketNumberExists(db *sql.DB, number string) (bool, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM tickets WHERE number = ?`, number).Scan(&count)
	return count > 0, err
}

func GetTicketNumbersWithPrefix(db *sql.DB, prefix string) ([]string, error) {
	rows, err := db.Query(`SELECT number FROM tickets WHERE number LIKE ? || '%'`, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func UpdateTicketResolution(db *sql.DB, number, status, resolvedDetail string, resolved Moment) error {
	res, err := db.Exec(
		`UPDATE tickets SET status = ?, resolved_detail = ?, resolved_date = ?, resolved_time = ?
		 WHERE number = ?`,
		status, resolvedDetail, resolved.DateKey, resolved.TimeKey, number,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func GetAllTickets(db *sql.DB) ([]Ticket, error) {
	rows, err := db.Query(
		`SELECT id, number, type, status, severity, category, subject, detail, action,
		        resolved_detail, assignee, created_date, created_time, resolved_date, resolved_time, created_at
		 FROM tickets ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Ticket
	for rows.Next() {
		var t Ticket
		if err := rows.Scan(
			&t.ID, &t.Number, &t.Type, &t.Status, &t.Severity, &t.Category, &t.Subject,
			&t.Detail, &t.Action, &t.ResolvedDetail, &t.Assignee,
			&t.CreatedMoment.DateKey, &t.CreatedMoment.TimeKey,
			&t.ResolvedMoment.DateKey, &t.ResolvedMoment.TimeKey, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// --- Shift reports ---

func InsertShiftReport(db *sql.DB, r ShiftReport) (int64, error) {
	res, err := db.Exec(
		`INSERT INTO shift_reports (report_date, shift, reporter, body, file_path, chat_target)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.ReportDate, r.Shift, r.Reporter, r.Body, r.FilePath, r.ChatTarget,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func GetShiftReportsByDate(db *sql.DB, reportDate string) ([]ShiftReport, error) {
	rows, err := db.Query(
		`SELECT id, report_date, shift, reporter, body, file_path, chat_target, created_at
		 FROM shift_reports WHERE report_date = ? ORDER BY id`,
		reportDate,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ShiftReport
	for rows.Next() {
		var r ShiftReport
		if err := rows.Scan(
			&r.ID, &r.ReportDate, &r.Shift, &r.Reporter, &r.Body,
			&r.FilePath, &r.ChatTarget, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
