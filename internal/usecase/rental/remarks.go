package rental

import (
	"fmt"
	"time"
)

// RemarksFor derives the remarks column from the end date and the current
// date. Stored on every save so the value is an audit snapshot; callers that
// need a fresh value between writes recompute with this function.
func RemarksFor(endDate *time.Time, now time.Time) string {
	if endDate == nil {
		return "No end date set"
	}
	d := daysBetween(now, *endDate)
	switch {
	case d > 5:
		return "Active"
	case d == 5:
		return "Almost Due Date"
	case d == 0:
		return "Due Date Today"
	case d < 0:
		if d == -1 {
			return "Over Due (1 day)"
		}
		return fmt.Sprintf("Over Due (%d days)", -d)
	default:
		return "Due Soon"
	}
}

// daysBetween counts whole calendar days from a to b, negative when b is in
// the past. Time-of-day is ignored.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad).Hours() / 24)
}
