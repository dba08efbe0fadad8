// Package dateutil is the single place where instants become calendar days.
// Every date comparison in the service goes through DayUTC so that rows
// stored with or without a zone offset land on the same UTC day.
package dateutil

import "time"

// DayUTC returns t's calendar day as midnight UTC.
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayUTC(a).Equal(DayUTC(b))
}

// DaysBetween returns the number of whole days from a's day to b's day.
// Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DayUTC(b).Sub(DayUTC(a)) / (24 * time.Hour))
}

// AddDays returns t's UTC day shifted by n days, at midnight UTC.
func AddDays(t time.Time, n int) time.Time {
	return DayUTC(t).AddDate(0, 0, n)
}
