package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// UnknownKey is the sentinel for a date or time that could not be parsed.
const UnknownKey = ""

// Moment is a normalized (calendar date, wall-clock time) pair in the
// configured time zone. DateKey is "2006-01-02", TimeKey is "15:04".
// Either field is UnknownKey when the source value was unparseable.
type Moment struct {
	DateKey string
	TimeKey string
}

func (m Moment) Known() bool {
	return m.DateKey != UnknownKey && m.TimeKey != UnknownKey
}

// SortKey orders moments chronologically via plain string comparison.
func (m Moment) SortKey() string {
	return m.DateKey + " " + m.TimeKey
}

var (
	dayFirstRe  = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})(?:[T\s]+(\d{1,2}):(\d{1,2}))?`)
	yearFirstRe = regexp.MustCompile(`^(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})(?:[T\s]+(\d{1,2}):(\d{1,2}))?`)
)

// Upstream systems in Thailand record years in the Buddhist era.
// Anything past this is assumed BE and shifted back 543 years.
const buddhistYearFloor = 2400

var freeFormLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"02 Jan 2006 15:04",
	"Jan 2, 2006 15:04",
	"Jan 2, 2006",
	"15:04:05",
	"15:04",
}

// NormalizeMoment coerces the heterogeneous date/time values found in the
// source feeds (native timestamps, day-first Thai/UK strings, year-first ISO
// strings, Buddhist-era years, free text) into a canonical Moment. It never
// fails: unparseable input yields the unknown sentinel in both fields so the
// record degrades to unmatched instead of aborting a batch.
func NormalizeMoment(val any, loc *time.Location) Moment {
	if loc == nil {
		loc = time.Local
	}

	switch v := val.(type) {
	case nil:
		return Moment{}
	case time.Time:
		if v.IsZero() {
			return Moment{}
		}
		return momentOf(v.In(loc))
	case string:
		return normalizeMomentString(v, loc)
	default:
		return normalizeMomentString(fmt.Sprint(val), loc)
	}
}

func normalizeMomentString(s string, loc *time.Location) Moment {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return Moment{}
	}

	if m := dayFirstRe.FindStringSubmatch(s); m != nil {
		return buildMoment(m[3], m[2], m[1], m[4], m[5], loc)
	}
	if m := yearFirstRe.FindStringSubmatch(s); m != nil {
		return buildMoment(m[1], m[2], m[3], m[4], m[5], loc)
	}

	// Last resort: a handful of free-form layouts. Time-only values keep the
	// zero date, which callers treat as "time known, date unknown".
	for _, layout := range freeFormLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if layout == "15:04" || layout == "15:04:05" {
			return Moment{DateKey: UnknownKey, TimeKey: t.Format("15:04")}
		}
		return momentOf(t)
	}
	return Moment{}
}

func buildMoment(year, month, day, hour, min string, loc *time.Location) Moment {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if y > buddhistYearFloor {
		y -= 543
	}
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return Moment{}
	}
	h, mi := 0, 0
	if hour != "" {
		h, _ = strconv.Atoi(hour)
	}
	if min != "" {
		mi, _ = strconv.Atoi(min)
	}
	if h > 23 || mi > 59 {
		return Moment{}
	}
	return momentOf(time.Date(y, time.Month(mo), d, h, mi, 0, 0, loc))
}

func momentOf(t time.Time) Moment {
	return Moment{
		DateKey: t.Format("2006-01-02"),
		TimeKey: t.Format("15:04"),
	}
}

// CombineDateTime builds a Moment from separate date and time cells, the way
// the source sheets store them. The date column supplies DateKey, the time
// column TimeKey; a time column that carries a full timestamp still works.
func CombineDateTime(dateVal, timeVal any, loc *time.Location) Moment {
	d := NormalizeMoment(dateVal, loc)
	t := NormalizeMoment(timeVal, loc)
	if t.TimeKey == UnknownKey {
		t.TimeKey = d.TimeKey
	}
	return Moment{DateKey: d.DateKey, TimeKey: t.TimeKey}
}

var identityStripRe = regexp.MustCompile(`[^\p{L}\p{N}\p{M}]+`)

// NormalizeIdentity reduces a free-text entity name (team, channel) to a
// comparison key: lowercase, keep letters, digits and combining marks.
// Team names are mostly Thai, so the strip must keep every script, and Thai
// vowel and tone signs are combining marks rather than letters.
// Comparison only; never use the result for display.
func NormalizeIdentity(s string) string {
	return identityStripRe.ReplaceAllString(strings.ToLower(s), "")
}
