package leave

import (
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/leave"
)

// CalendarDays counts the days of an application, both endpoints inclusive.
// A single-day application (from == to) counts as 1.
func CalendarDays(from, to time.Time) float64 {
	from = truncateToDay(from)
	to = truncateToDay(to)
	if to.Before(from) {
		return 0
	}
	return float64(int(to.Sub(from).Hours()/24)) + 1
}

// OverlapDays counts the calendar days of [from, to] that fall inside the
// accounting-year window [windowStart, windowEnd). An application entirely
// outside the window contributes 0; one spanning a boundary contributes only
// its inside portion.
func OverlapDays(from, to, windowStart, windowEnd time.Time) float64 {
	from = truncateToDay(from)
	to = truncateToDay(to)
	windowStart = truncateToDay(windowStart)
	// windowEnd is exclusive; the last countable day is the one before it.
	lastDay := truncateToDay(windowEnd).AddDate(0, 0, -1)

	if from.Before(windowStart) {
		from = windowStart
	}
	if to.After(lastDay) {
		to = lastDay
	}
	if to.Before(from) {
		return 0
	}
	return CalendarDays(from, to)
}

// UsedDays sums the in-window days of the employee's approved applications.
// excludeID skips one application, so that editing or re-deciding it does not
// count the application against itself.
func UsedDays(approved []leave.LeaveApplication, windowStart, windowEnd time.Time, excludeID string) float64 {
	var used float64
	for _, app := range approved {
		if excludeID != "" && app.ID == excludeID {
			continue
		}
		used += OverlapDays(app.FromDate, app.ToDate, windowStart, windowEnd)
	}
	return used
}

// Admissible reports whether an application for the requested number of days
// fits the policy given the days already used. A negative-balance policy
// always admits.
func Admissible(policy leave.Policy, used, requested float64) bool {
	if policy.NegativeBalance {
		return true
	}
	return requested <= policy.AllowedBalance-used
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
