package quest

import (
	"fmt"
	"time"
)

// Periode tokens identify the time bucket an attempt belongs to: the UTC
// calendar date for daily quests ("2024-06-01") and the ISO-8601 week for
// weekly quests ("2024-W23"). All functions are pure.

// DailyPeriode returns the daily bucket token for the given instant.
func DailyPeriode(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WeeklyPeriode returns the weekly bucket token for the given instant.
// ISO week numbering: the week containing the first Thursday of the year is
// week 1. Single-digit weeks are zero-padded to match stored tokens.
func WeeklyPeriode(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// IsValidDaily reports whether periode is the current daily bucket.
func IsValidDaily(periode string, now time.Time) bool {
	return periode == DailyPeriode(now)
}

// IsValidWeekly reports whether periode is the current weekly bucket.
func IsValidWeekly(periode string, now time.Time) bool {
	return periode == WeeklyPeriode(now)
}

// CurrentPeriode returns the current bucket token for a quest category.
func CurrentPeriode(category string, now time.Time) string {
	if category == "weekly" {
		return WeeklyPeriode(now)
	}
	return DailyPeriode(now)
}
