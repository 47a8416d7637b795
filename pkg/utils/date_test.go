package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncateToDay(t *testing.T) {
	in := time.Date(2026, 3, 15, 18, 42, 7, 999, time.UTC)
	got := TruncateToDay(in)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestTruncateToDayConvertsToUTCFirst(t *testing.T) {
	// 01:30 on March 16 in UTC+7 is still March 15 in UTC.
	in := time.Date(2026, 3, 16, 1, 30, 0, 0, time.FixedZone("UTC+7", 7*3600))
	got := TruncateToDay(in)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysAgo(t *testing.T) {
	base := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), DaysAgo(base, 1))
	assert.Equal(t, time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), DaysAgo(base, 7))
	// Crosses a month boundary.
	assert.Equal(t, time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC), DaysAgo(base, 30))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-03-15", FormatDate(time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)))
	// Non-UTC input is rendered as its UTC calendar date.
	assert.Equal(t, "2026-03-15", FormatDate(time.Date(2026, 3, 16, 1, 30, 0, 0, time.FixedZone("UTC+7", 7*3600))))
}

func TestTodayUTC(t *testing.T) {
	got := TodayUTC()
	assert.Equal(t, time.UTC, got.Location())
	assert.Zero(t, got.Hour())
	assert.Zero(t, got.Minute())
}
