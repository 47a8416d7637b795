package utils

import "time"

// DateLayout is the calendar-date format used for snapshot keys and API output.
const DateLayout = "2006-01-02"

// TodayUTC returns the current UTC calendar date, truncated to midnight.
func TodayUTC() time.Time {
	return TruncateToDay(time.Now().UTC())
}

// TruncateToDay strips the time-of-day portion, keeping the UTC calendar date.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysAgo returns the UTC calendar date n days before t.
func DaysAgo(t time.Time, n int) time.Time {
	return TruncateToDay(t).AddDate(0, 0, -n)
}

// FormatDate renders a time as a calendar date string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
