package util

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive work_start filter. Nil ends are open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ParseDateRange turns optional calendar dates into an inclusive range:
// start at 00:00:00.000, end at 23:59:59.999. This matches
// the wire contract where callers supply dates without a time component.
func ParseDateRange(startDate, endDate string) (DateRange, error) {
	var dr DateRange

	if startDate != "" {
		t, err := time.ParseInLocation(dateLayout, startDate, time.Local)
		if err != nil {
			return dr, fmt.Errorf("invalid start_date %q: expected YYYY-MM-DD", startDate)
		}
		dr.Start = &t
	}

	if endDate != "" {
		t, err := time.ParseInLocation(dateLayout, endDate, time.Local)
		if err != nil {
			return dr, fmt.Errorf("invalid end_date %q: expected YYYY-MM-DD", endDate)
		}
		endOfDay := EndOfDay(t)
		dr.End = &endOfDay
	}

	return dr, nil
}

// EndOfDay returns the last representable millisecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Contains reports whether ts falls inside the range, both ends inclusive.
func (dr DateRange) Contains(ts time.Time) bool {
	if dr.Start != nil && ts.Before(*dr.Start) {
		return false
	}
	if dr.End != nil && ts.After(*dr.End) {
		return false
	}
	return true
}

func (dr DateRange) IsZero() bool {
	return dr.Start == nil && dr.End == nil
}
