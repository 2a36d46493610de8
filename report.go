package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ReportOptions are the per-run inputs the scheduler or CLI supplies.
type ReportOptions struct {
	Shift    string
	Reporter string
	Draft    bool // build only; do not persist or deliver
}

// ReportResult bundles everything one report run produced.
type ReportResult struct {
	Window       Window
	Stats        ShiftStats
	Verification VerificationReport
	Breakdown    map[string]int
	ChatBody     string
	FilePath     string
}

// BuildShiftReport assembles the handover report for the operational day
// ending on reference's calendar date: ticket stats, the league breakdown,
// and the fixture-verification summary, rendered as a chat body and a
// markdown file. Draft runs skip the file, the DB record, and delivery.
func BuildShiftReport(cfg Config, db *sql.DB, reference time.Time, opts ReportOptions) (ReportResult, error) {
	window, err := ShiftWindow(reference, cfg.WindowSpec())
	if err != nil {
		return ReportResult{}, fmt.Errorf("build report: %w", err)
	}

	fixtures, err := GetRecentFixtures(db, cfg.FetchLimit)
	if err != nil {
		return ReportResult{}, fmt.Errorf("build report: load fixtures: %w", err)
	}
	logs, err := GetRecentMatchLogs(db, cfg.FetchLimit)
	if err != nil {
		return ReportResult{}, fmt.Errorf("build report: load match logs: %w", err)
	}
	verification, err := Reconcile(fixtures, logs, window)
	if err != nil {
		return ReportResult{}, fmt.Errorf("build report: %w", err)
	}

	tickets, err := GetAllTickets(db)
	if err != nil {
		return ReportResult{}, fmt.Errorf("build report: load tickets: %w", err)
	}
	stats, err := AggregateShiftStats(tickets, window.Label)
	if err != nil {
		return ReportResult{}, fmt.Errorf("build report: %w", err)
	}

	handover := loadHandoverNotes(cfg)

	result := ReportResult{
		Window:       window,
		Stats:        stats,
		Verification: verification,
		Breakdown:    LeagueBreakdown(verification.Entries),
	}
	result.ChatBody = renderChatBody(cfg, window, stats, verification, result.Breakdown, handover, opts)

	if opts.Draft {
		return result, nil
	}

	markdown := renderMarkdown(cfg, window, stats, verification, result.Breakdown, handover, opts)
	path, err := WriteReportFile(markdown, cfg.ReportOutputDir, window.Label, cfg.TeamName)
	if err != nil {
		return result, fmt.Errorf("build report: write file: %w", err)
	}
	result.FilePath = path

	if _, err := InsertShiftReport(db, ShiftReport{
		ReportDate: window.Label,
		Shift:      opts.Shift,
		Reporter:   opts.Reporter,
		Body:       result.ChatBody,
		FilePath:   path,
		ChatTarget: cfg.ChatTarget,
	}); err != nil {
		return result, fmt.Errorf("build report: store record: %w", err)
	}
	return result, nil
}

func loadHandoverNotes(cfg Config) string {
	if cfg.HandoverPath == "" {
		return ""
	}
	data, err := os.ReadFile(cfg.HandoverPath)
	if err != nil {
		log.Printf("handover notes unavailable (%v), continuing without", err)
		return ""
	}
	notes := strings.TrimSpace(string(data))
	if notes == "" {
		return ""
	}
	if cfg.LLMConfigured() {
		summary, err := SummarizeHandover(cfg, notes)
		if err != nil {
			log.Printf("handover summary failed, using raw notes: %v", err)
			return notes
		}
		return summary
	}
	return notes
}

func renderChatBody(cfg Config, w Window, stats ShiftStats, v VerificationReport, breakdown map[string]int, handover string, opts ReportOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Shift Operations Report\nDate: %s\nReporter: %s", w.Label, opts.Reporter)
	if opts.Shift != "" {
		fmt.Fprintf(&b, " (%s)", opts.Shift)
	}
	b.WriteString("\n─────────────────────────────\n\n")

	fmt.Fprintf(&b, "1. Ticket summary\n> New: %d\n> Resolved today: %d\n> Backlog: %d\n> Total: %d\n\n",
		stats.NewCount, stats.ResolvedCount+stats.ClosedCount, stats.BacklogCount, stats.Total())

	if len(cfg.StatusChecklist) > 0 {
		b.WriteString("2. Channel checks\n")
		for _, line := range cfg.StatusChecklist {
			fmt.Fprintf(&b, "> %s\n", line)
		}
		b.WriteString("\n")
	}

	if handover != "" {
		b.WriteString("3. Shift transfer\n")
		for _, line := range strings.Split(handover, "\n") {
			fmt.Fprintf(&b, "> %s\n", line)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "─────────────────────────────\n4. Match summary (%s %s - %s %s)\n",
		v.Window.Start.DateKey, v.Window.Start.TimeKey, v.Window.End.DateKey, v.Window.End.TimeKey)
	fmt.Fprintf(&b, "Total %d, verified %d, missing proof %d\n", len(v.Entries), v.Matched, v.Missing)
	b.WriteString(FormatLeagueBreakdown(breakdown))
	b.WriteString("\n")
	return b.String()
}

func renderMarkdown(cfg Config, w Window, stats ShiftStats, v VerificationReport, breakdown map[string]int, handover string, opts ReportOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### %s Shift Report %s\n\n", cfg.TeamName, w.Label)
	fmt.Fprintf(&b, "Reporter: %s", opts.Reporter)
	if opts.Shift != "" {
		fmt.Fprintf(&b, " (%s)", opts.Shift)
	}
	fmt.Fprintf(&b, "\nWindow: %s %s - %s %s\n\n",
		w.Start.DateKey, w.Start.TimeKey, w.End.DateKey, w.End.TimeKey)

	b.WriteString("#### Tickets\n\n")
	fmt.Fprintf(&b, "- New: %d\n- Resolved: %d\n- Closed: %d\n- Backlog: %d\n\n",
		stats.NewCount, stats.ResolvedCount, stats.ClosedCount, stats.BacklogCount)
	writeTicketLines(&b, "New today", stats.NewList)
	writeTicketLines(&b, "Resolved today", stats.ResolvedList)
	writeTicketLines(&b, "Backlog", stats.BacklogList)

	b.WriteString("#### Match breakdown\n\n")
	b.WriteString(FormatLeagueBreakdown(breakdown))
	b.WriteString("\n\n#### Verification\n\n")
	if len(v.Entries) == 0 {
		b.WriteString("No fixtures in window.\n")
	}
	for _, e := range v.Entries {
		marker := "OK"
		if e.Status == StatusMissing {
			marker = "MISSING"
		}
		fmt.Fprintf(&b, "- [%s] %s %s - %s vs %s (%s)\n",
			marker, e.Fixture.Moment.DateKey, e.Fixture.Moment.TimeKey,
			e.Fixture.Home, e.Fixture.Away, GroupLeague(e.Fixture.League))
	}

	if handover != "" {
		b.WriteString("\n#### Handover\n\n")
		for _, line := range strings.Split(handover, "\n") {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return b.String()
}

func writeTicketLines(b *strings.Builder, heading string, tickets []Ticket) {
	if len(tickets) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", heading)
	for _, t := range tickets {
		subject := t.Subject
		if subject == "" {
			subject = t.Detail
		}
		fmt.Fprintf(b, "- [%s] %s - %s\n", t.Status, t.Number, subject)
	}
	b.WriteString("\n")
}

func WriteReportFile(content, outputDir, reportDate, teamName string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%s_%s.md", sanitizeFilename(teamName), strings.ReplaceAll(reportDate, "-", ""))
	path := filepath.Join(outputDir, filename)
	return path, os.WriteFile(path, []byte(content), 0644)
}

func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_", " ", "_")
	return replacer.Replace(s)
}
