// Package stats derives progress metrics from a check's day-status set.
// Everything is a pure function over (check, statuses, now); nothing here
// mutates state or reads the wall clock.
package stats

import (
	"sort"
	"time"

	"github.com/anapiyani/Checkdaily-backend/internal/dateutil"
	dom "github.com/anapiyani/Checkdaily-backend/internal/domain"
)

// Summary holds the derived metrics for one check as of a given day.
type Summary struct {
	PassedDays    int
	Percentage    int
	CurrentStreak int
	LongestStreak int
}

// DayActivity is one cell of the yearly activity grid.
type DayActivity struct {
	Date           time.Time
	CompletedCount int
}

// Compute derives the summary for a check from its full day-status set.
// Rows dated after now's UTC day are ignored for every metric.
func Compute(check dom.Check, statuses []dom.DayStatus, now time.Time) Summary {
	today := dayNumber(now)

	passed := dateutil.DaysBetween(check.CreatedAt, now) + 1
	if passed < 1 {
		passed = 1
	}

	// Restrict to rows on or before today, ascending by day.
	past := make([]dom.DayStatus, 0, len(statuses))
	for _, ds := range statuses {
		if dayNumber(ds.Date) <= today {
			past = append(past, ds)
		}
	}
	sort.Slice(past, func(i, j int) bool {
		return dayNumber(past[i].Date) < dayNumber(past[j].Date)
	})

	checkedCount := 0
	for _, ds := range past {
		if ds.IsChecked {
			checkedCount++
		}
	}
	percentage := 0
	if check.Count > 0 {
		percentage = checkedCount * 100 / check.Count
	}

	return Summary{
		PassedDays:    passed,
		Percentage:    percentage,
		CurrentStreak: currentStreak(past, today),
		LongestStreak: longestStreak(past),
	}
}

// longestStreak scans ascending rows. A checked row one day after the
// previous checked row extends the run; an unchecked row resets it to zero
// and a checked row after a date gap restarts it at one. Missing rows break
// a run the same way an unchecked row does.
func longestStreak(past []dom.DayStatus) int {
	longest, run := 0, 0
	lastChecked := 0
	haveChecked := false
	for _, ds := range past {
		day := dayNumber(ds.Date)
		if !ds.IsChecked {
			run = 0
			continue
		}
		if haveChecked && day == lastChecked+1 {
			run++
		} else {
			run = 1
		}
		lastChecked = day
		haveChecked = true
		if run > longest {
			longest = run
		}
	}
	return longest
}

// currentStreak walks backward from today, counting consecutive checked
// days. Zero when today has no row or is unchecked.
func currentStreak(past []dom.DayStatus, today int) int {
	checked := make(map[int]bool, len(past))
	for _, ds := range past {
		checked[dayNumber(ds.Date)] = ds.IsChecked
	}
	streak := 0
	for day := today; checked[day]; day-- {
		streak++
	}
	return streak
}

// Yearly buckets the user's checked rows by UTC day and returns one entry
// per calendar day of the year plus the maximum single-day count.
func Yearly(year int, statuses []dom.DayStatus) ([]DayActivity, int) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	counts := make(map[time.Time]int)
	for _, ds := range statuses {
		if !ds.IsChecked {
			continue
		}
		day := dateutil.DayUTC(ds.Date)
		if day.Before(start) || !day.Before(end) {
			continue
		}
		counts[day]++
	}

	var grid []DayActivity
	maxCount := 0
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		c := counts[day]
		if c > maxCount {
			maxCount = c
		}
		grid = append(grid, DayActivity{Date: day, CompletedCount: c})
	}
	return grid, maxCount
}

// SortByDate returns the statuses ordered ascending by date, for building
// response snapshots.
func SortByDate(statuses []dom.DayStatus) []dom.DayStatus {
	out := make([]dom.DayStatus, len(statuses))
	copy(out, statuses)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func dayNumber(t time.Time) int {
	return int(dateutil.DayUTC(t).Unix() / (24 * 60 * 60))
}
