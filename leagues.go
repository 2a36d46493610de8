package main

import (
	"fmt"
	"sort"
	"strings"
)

// leagueGroups maps keywords found in raw league/program names onto the
// group names used in reports. Order matters: the first hit wins, and the
// more specific entries sit above the generic ones ("Thai Women League 1"
// before "Thai League").
var leagueGroups = []struct {
	keyword string
	group   string
}{
	{"SV LEAGUE", "SV League Volleyball"},
	{"THAI WOMEN LEAGUE 1", "Thai Women League 1"},
	{"THAI WOMEN LEAGUE 2", "Thai Women League 2"},
	{"THAI LEAGUE", "Thai League"},
	{"FRENCH", "French League"},
	{"LIGUE 1", "French League"},
	{"PREMIER LEAGUE", "Premier League"},
	{"EFL", "EFL"},
	{"CARABAO", "Carabao Cup"},
	{"UEFA", "UEFA European"},
	{"U21", "U21"},
	{"CHANG FA CUP", "Chang FA Cup"},
	{"EMIRATES", "The Emirates FA Cup"},
	{"MUANGTHAI", "MUANGTHAI CUP"},
}

// GroupLeague maps a raw league name to its report group. Unrecognized
// names pass through unchanged; blank becomes "Other".
func GroupLeague(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Other"
	}
	upper := strings.ToUpper(raw)
	for _, g := range leagueGroups {
		if strings.Contains(upper, g.keyword) {
			return g.group
		}
	}
	return raw
}

// LeagueBreakdown counts deduplicated in-window fixtures per league group.
func LeagueBreakdown(entries []VerificationEntry) map[string]int {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[GroupLeague(e.Fixture.League)]++
	}
	return counts
}

// FormatLeagueBreakdown renders the per-group counts as report lines,
// alphabetical for a stable report body.
func FormatLeagueBreakdown(counts map[string]int) string {
	if len(counts) == 0 {
		return "No matches in window"
	}
	groups := make([]string, 0, len(counts))
	for g := range counts {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "- %s: %d\n", g, counts[g])
	}
	return strings.TrimRight(b.String(), "\n")
}
