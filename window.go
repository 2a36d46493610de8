package main

import (
	"fmt"
	"time"
)

// WindowSpec configures the rolling shift day. The split hour is the clock
// hour at which one operational day ends and the next begins (06:00 and
// 10:00 are both in production use, so it is configuration, not a constant).
type WindowSpec struct {
	SplitHour int
	Location  *time.Location
}

// Window is one operational day: [yesterday@split, today@split).
// Bounds are normalized moments; Label is the as-of calendar date.
type Window struct {
	Label string
	Start Moment
	End   Moment // exclusive
}

// Valid reports whether both bounds are usable.
func (w Window) Valid() bool {
	return w.Start.Known() && w.End.Known()
}

// ShiftWindow computes the operational day ending at reference's calendar
// date. Pure: the same inputs always produce identical bounds.
func ShiftWindow(reference time.Time, spec WindowSpec) (Window, error) {
	if spec.SplitHour < 0 || spec.SplitHour > 23 {
		return Window{}, fmt.Errorf("window spec: split hour %d out of range", spec.SplitHour)
	}
	if spec.Location == nil {
		return Window{}, fmt.Errorf("window spec: location is required")
	}

	ref := reference.In(spec.Location)
	target := ref.Format("2006-01-02")
	prev := ref.AddDate(0, 0, -1).Format("2006-01-02")
	split := fmt.Sprintf("%02d:00", spec.SplitHour)

	return Window{
		Label: target,
		Start: Moment{DateKey: prev, TimeKey: split},
		End:   Moment{DateKey: target, TimeKey: split},
	}, nil
}

// Contains reports whether m falls inside the half-open window. Records at
// exactly the split hour on the end date belong to the next window, never
// this one. Unknown moments are never in window.
func (w Window) Contains(m Moment) bool {
	if !m.Known() {
		return false
	}
	if m.DateKey == w.Start.DateKey {
		return m.TimeKey >= w.Start.TimeKey
	}
	if m.DateKey == w.End.DateKey {
		return m.TimeKey < w.End.TimeKey
	}
	return false
}
