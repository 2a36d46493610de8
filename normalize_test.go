package main

import (
	"testing"
	"time"
)

func bangkok(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestNormalizeMomentFormats(t *testing.T) {
	loc := bangkok(t)

	cases := []struct {
		name     string
		input    any
		wantDate string
		wantTime string
	}{
		{"day first", "10/02/2026 14:30", "2026-02-10", "14:30"},
		{"day first no time", "10/02/2026", "2026-02-10", "00:00"},
		{"day first dashes", "3-2-2026 9:05", "2026-02-03", "09:05"},
		{"year first", "2026-02-10 14:30", "2026-02-10", "14:30"},
		{"year first slashes", "2026/2/3", "2026-02-03", "00:00"},
		{"buddhist year", "10/02/2569 14:00", "2026-02-10", "14:00"},
		{"buddhist year first", "2569-02-10 08:00", "2026-02-10", "08:00"},
		{"native time", time.Date(2026, 2, 3, 5, 59, 0, 0, loc), "2026-02-03", "05:59"},
		{"time only", "23:30", UnknownKey, "23:30"},
		{"empty", "", UnknownKey, UnknownKey},
		{"placeholder", "-", UnknownKey, UnknownKey},
		{"whitespace", "   ", UnknownKey, UnknownKey},
		{"garbage", "not a date", UnknownKey, UnknownKey},
		{"nil", nil, UnknownKey, UnknownKey},
		{"zero time", time.Time{}, UnknownKey, UnknownKey},
		{"bad month", "10/13/2026", UnknownKey, UnknownKey},
		{"bad hour", "10/02/2026 25:00", UnknownKey, UnknownKey},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeMoment(tc.input, loc)
			if got.DateKey != tc.wantDate || got.TimeKey != tc.wantTime {
				t.Fatalf("NormalizeMoment(%v) = (%q, %q), want (%q, %q)",
					tc.input, got.DateKey, got.TimeKey, tc.wantDate, tc.wantTime)
			}
		})
	}
}

func TestNormalizeMomentDeterministic(t *testing.T) {
	loc := bangkok(t)
	inputs := []any{"10/02/2569 14:00", "2026-02-03", "garbage", time.Date(2026, 2, 3, 10, 0, 0, 0, loc)}
	for _, in := range inputs {
		first := NormalizeMoment(in, loc)
		second := NormalizeMoment(in, loc)
		if first != second {
			t.Fatalf("NormalizeMoment(%v) not deterministic: %v vs %v", in, first, second)
		}
	}
}

func TestCombineDateTime(t *testing.T) {
	loc := bangkok(t)

	got := CombineDateTime("10/02/2026", "21:45", loc)
	if got.DateKey != "2026-02-10" || got.TimeKey != "21:45" {
		t.Fatalf("separate cells: got (%q, %q)", got.DateKey, got.TimeKey)
	}

	// Time column blank: the date column's midnight default carries over.
	got = CombineDateTime("10/02/2026", "", loc)
	if got.DateKey != "2026-02-10" || got.TimeKey != "00:00" {
		t.Fatalf("blank time cell: got (%q, %q)", got.DateKey, got.TimeKey)
	}

	// Full timestamp in the time column still works.
	got = CombineDateTime("10/02/2026", "10/02/2026 18:00", loc)
	if got.DateKey != "2026-02-10" || got.TimeKey != "18:00" {
		t.Fatalf("timestamp time cell: got (%q, %q)", got.DateKey, got.TimeKey)
	}

	got = CombineDateTime("-", "-", loc)
	if got.Known() {
		t.Fatalf("placeholder cells should stay unknown, got (%q, %q)", got.DateKey, got.TimeKey)
	}
}

func TestNormalizeIdentity(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Team A", "teama"},
		{"  TEAM  A ", "teama"},
		{"Man. United F.C.", "manunitedfc"},
		{"บุรีรัมย์ ยูไนเต็ด", "บุรีรัมย์ยูไนเต็ด"},
		{"การท่าเรือ เอฟซี", "การท่าเรือเอฟซี"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeIdentity(tc.in); got != tc.want {
			t.Fatalf("NormalizeIdentity(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
