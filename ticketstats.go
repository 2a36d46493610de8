package main

import (
	"fmt"
	"strings"
)

// ShiftStats answers the three shift-handover questions: what came in today,
// what was finished today, and what is still outstanding. The categories
// overlap on purpose (a ticket opened and closed on the same day is both new
// and resolved), but no list carries a ticket twice, and counts always
// reflect full logical membership even where a list dedupes for display.
type ShiftStats struct {
	NewCount      int
	ResolvedCount int
	ClosedCount   int
	BacklogCount  int

	NewList      []Ticket
	ResolvedList []Ticket
	BacklogList  []Ticket
}

func (s ShiftStats) Total() int {
	return s.NewCount + s.ResolvedCount + s.ClosedCount + s.BacklogCount
}

var terminalStatusWords = []string{"resolved", "succeed", "success", "done", "fix", "close"}

// IsTerminalStatus reports whether a free-text ticket status means the work
// is finished. Matching is case-insensitive substring, so "Closed",
// "CLOSE - duplicate" and "Fixed in prod" all count.
func IsTerminalStatus(status string) bool {
	s := strings.ToLower(status)
	for _, w := range terminalStatusWords {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// AggregateShiftStats buckets tickets for the target calendar date
// ("2006-01-02"). Per ticket:
//
//   - created on the target date: new, whatever the current status;
//   - terminal and resolved on the target date: resolved (counted as closed
//     when the status mentions "close");
//   - not terminal: backlog, no matter how old.
//
// A ticket in the new list is not repeated in the resolved or backlog lists,
// but still counts there.
func AggregateShiftStats(tickets []Ticket, targetDate string) (ShiftStats, error) {
	targetDate = strings.TrimSpace(targetDate)
	if targetDate == "" {
		return ShiftStats{}, fmt.Errorf("shift stats: target date is required")
	}

	var stats ShiftStats
	for _, t := range tickets {
		createdToday := t.CreatedMoment.DateKey == targetDate
		resolvedToday := t.ResolvedMoment.DateKey == targetDate
		terminal := IsTerminalStatus(t.Status)
		closed := strings.Contains(strings.ToLower(t.Status), "close")

		if createdToday {
			stats.NewCount++
			stats.NewList = append(stats.NewList, t)
		}
		if terminal && resolvedToday {
			if closed {
				stats.ClosedCount++
			} else {
				stats.ResolvedCount++
			}
			if !createdToday {
				stats.ResolvedList = append(stats.ResolvedList, t)
			}
		}

		if !terminal {
			stats.BacklogCount++
			if !createdToday {
				stats.BacklogList = append(stats.BacklogList, t)
			}
		}
	}
	return stats, nil
}
