package main

import (
	"fmt"
	"sort"
)

// Verification statuses.
const (
	StatusMatched = "MATCHED"
	StatusMissing = "MISSING"
)

// VerificationEntry pairs one external fixture with the operator log row
// that covers it, or records its absence. Every deduplicated in-window
// fixture appears exactly once.
type VerificationEntry struct {
	Fixture Fixture
	Log     *MatchLog
	Status  string
}

// VerificationReport is the reconciliation output for one shift window.
type VerificationReport struct {
	Window  Window
	Entries []VerificationEntry
	Matched int
	Missing int
}

// matchKey is the composite dedupe key for the external feed. The feed
// repeats fixtures across exports, so kickoff time plus the normalized home
// side identifies a fixture well enough.
func matchKey(f Fixture) string {
	return f.Moment.TimeKey + "_" + NormalizeIdentity(f.Home)
}

// Reconcile cross-checks the external fixtures feed against the operator's
// match log for one shift window.
//
// Records whose moment failed normalization are dropped from both sides up
// front: they can never be matched and reporting them as missing would just
// be noise. Duplicate fixtures collapse to the first occurrence. A log row
// matches a fixture when the home/away pair is equal in either orientation,
// and one log row may satisfy several fixtures.
func Reconcile(fixtures []Fixture, logs []MatchLog, w Window) (VerificationReport, error) {
	if !w.Valid() {
		return VerificationReport{}, fmt.Errorf("reconcile: invalid window %q-%q", w.Start.SortKey(), w.End.SortKey())
	}

	seen := make(map[string]bool)
	var external []Fixture
	for _, f := range fixtures {
		if !w.Contains(f.Moment) {
			continue
		}
		key := matchKey(f)
		if seen[key] {
			continue
		}
		seen[key] = true
		external = append(external, f)
	}

	var internal []MatchLog
	for _, l := range logs {
		if w.Contains(l.Moment) {
			internal = append(internal, l)
		}
	}

	report := VerificationReport{Window: w}
	for _, f := range external {
		home := NormalizeIdentity(f.Home)
		away := NormalizeIdentity(f.Away)

		var found *MatchLog
		for i := range internal {
			lh := NormalizeIdentity(internal[i].Home)
			la := NormalizeIdentity(internal[i].Away)
			if (lh == home && la == away) || (lh == away && la == home) {
				found = &internal[i]
				break
			}
		}

		entry := VerificationEntry{Fixture: f, Log: found, Status: StatusMissing}
		if found != nil {
			entry.Status = StatusMatched
			report.Matched++
		} else {
			report.Missing++
		}
		report.Entries = append(report.Entries, entry)
	}

	sort.SliceStable(report.Entries, func(i, j int) bool {
		return report.Entries[i].Fixture.Moment.SortKey() < report.Entries[j].Fixture.Moment.SortKey()
	})
	return report, nil
}
