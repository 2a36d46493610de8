package main

import "time"

// Fixture is one row of the external fixtures feed ("Match End" export).
// Moment and identity fields are normalized at the import boundary; the
// display fields keep their original spelling.
type Fixture struct {
	ID      int64
	Moment  Moment
	League  string
	Home    string
	Away    string
	Score   string
	Source  string // import file the row came from
	AddedAt time.Time
}

// MatchLog is one row of the operator's own broadcast log.
type MatchLog struct {
	ID       int64
	Moment   Moment
	League   string
	Home     string
	Away     string
	Channel  string
	Signal   string
	Status   string
	StartImg string
	StopImg  string
	AddedAt  time.Time
}

// Ticket is one IT support ticket. CreatedMoment falls back to the incident
// date when the created-date cell is blank; ResolvedMoment stays unknown
// until the ticket reaches a terminal status.
type Ticket struct {
	ID             int64
	Number         string // "INC-260203-001" style
	Type           string // "Incident" or "Request"
	Status         string // free text
	Severity       string
	Category       string
	Subject        string
	Detail         string
	Action         string
	ResolvedDetail string
	Assignee       string
	CreatedMoment  Moment
	ResolvedMoment Moment
	CreatedAt      time.Time
}

// ShiftReport is one generated handover report, persisted for audit.
type ShiftReport struct {
	ID         int64
	ReportDate string // the window label, "2006-01-02"
	Shift      string
	Reporter   string
	Body       string // chat text as delivered
	FilePath   string
	ChatTarget string
	CreatedAt  time.Time
}
