package utils

import "time"

// Session schedules are stored as plain strings so they sort lexically.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// TodayUTC formats the UTC calendar date of t in DateLayout.
func TodayUTC(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func NowUTC() time.Time { return time.Now().UTC() }
