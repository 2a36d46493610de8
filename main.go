package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

func main() {
	var (
		runReport      = flag.Bool("report", false, "build one shift report and exit")
		reportDate     = flag.String("date", "", "report date YYYY-MM-DD (default today)")
		draft          = flag.Bool("draft", false, "with -report: print the chat body without persisting or delivering")
		shift          = flag.String("shift", "", "with -report: shift label for the report header")
		importFixtures = flag.String("import-fixtures", "", "import a fixtures feed CSV and exit")
		importMatches  = flag.String("import-matches", "", "import an operator match log CSV and exit")
	)
	flag.Parse()

	cfg := LoadConfig()

	db, err := InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init database: %v", err)
	}
	defer db.Close()

	switch {
	case *importFixtures != "":
		result, err := ImportFixturesCSV(cfg, db, *importFixtures)
		if err != nil {
			log.Fatalf("Fixture import failed: %v", err)
		}
		log.Printf("Fixture import complete: %s", result.Summary())

	case *importMatches != "":
		result, err := ImportMatchLogsCSV(cfg, db, *importMatches)
		if err != nil {
			log.Fatalf("Match log import failed: %v", err)
		}
		log.Printf("Match log import complete: %s", result.Summary())

	case *runReport:
		reference := time.Now().In(cfg.Location)
		if *reportDate != "" {
			parsed, err := time.ParseInLocation("2006-01-02", *reportDate, cfg.Location)
			if err != nil {
				log.Fatalf("Invalid -date '%s': %v", *reportDate, err)
			}
			reference = parsed
		}

		result, err := BuildShiftReport(cfg, db, reference, ReportOptions{
			Shift:    *shift,
			Reporter: cfg.Reporter,
			Draft:    *draft,
		})
		if err != nil {
			log.Fatalf("Report failed: %v", err)
		}
		if *draft {
			fmt.Fprintln(os.Stdout, result.ChatBody)
			return
		}
		log.Printf("Report written to %s", result.FilePath)
		if err := DeliverReport(cfg, result); err != nil {
			log.Fatalf("Report delivery failed: %v", err)
		}

	default:
		log.Println("Starting shiftops report bot...")
		os.MkdirAll(cfg.ReportOutputDir, 0755)
		StartReportScheduler(cfg, db)
		select {}
	}
}
