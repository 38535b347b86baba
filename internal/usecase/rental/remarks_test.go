package rental

import (
	"testing"
	"time"
)

func Test_RemarksFor(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	day := func(offset int) *time.Time {
		d := now.AddDate(0, 0, offset)
		return &d
	}

	cases := []struct {
		name string
		end  *time.Time
		want string
	}{
		{"nil end date", nil, "No end date set"},
		{"far future", day(30), "Active"},
		{"six days out", day(6), "Active"},
		{"exactly five days", day(5), "Almost Due Date"},
		{"four days out", day(4), "Due Soon"},
		{"tomorrow", day(1), "Due Soon"},
		{"today", day(0), "Due Date Today"},
		{"yesterday", day(-1), "Over Due (1 day)"},
		{"ten days late", day(-10), "Over Due (10 days)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemarksFor(tc.end, now); got != tc.want {
				t.Fatalf("RemarksFor(%v) = %q, want %q", tc.end, got, tc.want)
			}
		})
	}
}

func Test_RemarksFor_IgnoresTimeOfDay(t *testing.T) {
	// 23:59 today vs 00:01 in five days is still exactly five calendar days.
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC)
	if got := RemarksFor(&end, now); got != "Almost Due Date" {
		t.Fatalf("got %q, want %q", got, "Almost Due Date")
	}
}

func Test_daysBetween(t *testing.T) {
	a := time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 2, 1, 0, 0, 0, time.UTC)
	if got := daysBetween(a, b); got != 2 {
		t.Fatalf("daysBetween = %d, want 2", got)
	}
	if got := daysBetween(b, a); got != -2 {
		t.Fatalf("daysBetween reversed = %d, want -2", got)
	}
}
