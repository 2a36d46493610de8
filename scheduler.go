package main

import (
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// StartReportScheduler runs the shift report on a cron schedule.
// The schedule is a standard 5-field cron expression (minute hour
// day-of-month month day-of-week), e.g. "15 10 * * *" for daily 10:15,
// just after a 10:00 shift split.
func StartReportScheduler(cfg Config, db *sql.DB) {
	schedule := strings.TrimSpace(cfg.ReportSchedule)
	if schedule == "" {
		log.Println("Scheduled reports disabled (report_schedule not set)")
		return
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		log.Printf("Invalid report_schedule '%s': %v, scheduled reports disabled", schedule, err)
		return
	}

	log.Printf("Shift report scheduled (cron: %s, split hour %02d:00)", schedule, cfg.ShiftSplitHour)

	go func() {
		for {
			now := time.Now().In(cfg.Location)
			next := sched.Next(now)
			wait := next.Sub(now)
			log.Printf("Next shift report at %s (in %s)", next.Format("Mon Jan 2 15:04"), wait.Round(time.Minute))

			time.Sleep(wait)

			runScheduledReport(cfg, db)
		}
	}()
}

func runScheduledReport(cfg Config, db *sql.DB) {
	result, err := BuildShiftReport(cfg, db, time.Now().In(cfg.Location), ReportOptions{
		Shift:    "Auto",
		Reporter: cfg.Reporter,
	})
	if err != nil {
		log.Printf("Scheduled report error: %v", err)
		return
	}
	log.Printf("Scheduled report built for %s: %d fixtures (%d missing), %d new tickets, %d backlog",
		result.Window.Label, len(result.Verification.Entries), result.Verification.Missing,
		result.Stats.NewCount, result.Stats.BacklogCount)

	if err := DeliverReport(cfg, result); err != nil {
		log.Printf("Scheduled report delivery error: %v", err)
	}
}
