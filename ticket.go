package main

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NextTicketNumber builds the next running ticket number for the day:
// INC-yymmdd-001, INC-yymmdd-002, ... Requests use the REQ prefix.
func NextTicketNumber(db *sql.DB, ticketType string, now time.Time) (string, error) {
	prefix := "INC"
	if strings.EqualFold(strings.TrimSpace(ticketType), "Request") {
		prefix = "REQ"
	}
	datePart := now.Format("060102")
	idPrefix := fmt.Sprintf("%s-%s-", prefix, datePart)

	numbers, err := GetTicketNumbersWithPrefix(db, idPrefix)
	if err != nil {
		return "", fmt.Errorf("next ticket number: %w", err)
	}

	maxRun := 0
	for _, n := range numbers {
		runPart := strings.TrimPrefix(n, idPrefix)
		if run, convErr := strconv.Atoi(runPart); convErr == nil && run > maxRun {
			maxRun = run
		}
	}
	return fmt.Sprintf("%s%03d", idPrefix, maxRun+1), nil
}

// CreateTicket inserts a new ticket, generating the number when the caller
// left it blank and rejecting duplicates when they supplied one.
func CreateTicket(db *sql.DB, t Ticket, now time.Time) (Ticket, error) {
	t.Number = strings.TrimSpace(t.Number)
	if t.Number != "" {
		exists, err := TicketNumberExists(db, t.Number)
		if err != nil {
			return t, fmt.Errorf("create ticket: %w", err)
		}
		if exists {
			return t, fmt.Errorf("create ticket: number %q already exists", t.Number)
		}
	} else {
		number, err := NextTicketNumber(db, t.Type, now)
		if err != nil {
			return t, err
		}
		t.Number = number
	}

	if t.Severity == "" {
		t.Severity = "Normal"
	}
	if !t.CreatedMoment.Known() {
		t.CreatedMoment = NormalizeMoment(now, now.Location())
	}

	id, err := InsertTicket(db, t)
	if err != nil {
		return t, fmt.Errorf("create ticket: %w", err)
	}
	t.ID = id
	return t, nil
}

// ResolveTicket stamps a terminal status and the resolution moment.
func ResolveTicket(db *sql.DB, number, status, resolvedDetail string, now time.Time) error {
	status = strings.TrimSpace(status)
	if status == "" {
		status = "Resolved"
	}
	if !IsTerminalStatus(status) {
		return fmt.Errorf("resolve ticket %s: status %q is not terminal", number, status)
	}
	moment := NormalizeMoment(now, now.Location())
	if err := UpdateTicketResolution(db, number, status, resolvedDetail, moment); err != nil {
		return fmt.Errorf("resolve ticket %s: %w", number, err)
	}
	return nil
}
