// Package days owns the day-status set of a check: generating rows at
// creation, growing and shrinking the set on resize, and today's
// check/uncheck. Functions here are pure planners: they take the loaded
// check and its day rows and return a Plan of row changes for the
// repository to apply inside one transaction.
package days

import (
	"errors"
	"sort"
	"time"

	"github.com/anapiyani/Checkdaily-backend/internal/dateutil"
	dom "github.com/anapiyani/Checkdaily-backend/internal/domain"

	"github.com/google/uuid"
)

// ErrNoEntryToday is returned by UncheckToday when today has no checked row.
var ErrNoEntryToday = errors.New("no checked entry for today")

// Plan lists the day-status row changes a mutation produced. Count and name
// changes travel on the mutated Check itself.
type Plan struct {
	Created    []dom.DayStatus
	Updated    []dom.DayStatus
	DeletedIDs []string
}

// Empty reports whether the plan changes no rows.
func (p Plan) Empty() bool {
	return len(p.Created) == 0 && len(p.Updated) == 0 && len(p.DeletedIDs) == 0
}

// Generate returns the initial unchecked day rows for a new check:
// one per offset 0..count-1 from now's UTC day. The returned count is the
// requested count clamped to zero; the caller stores it on the check.
func Generate(checkID string, requestedCount int, now time.Time) ([]dom.DayStatus, int) {
	count := requestedCount
	if count < 0 {
		count = 0
	}
	rows := make([]dom.DayStatus, 0, count)
	for i := 0; i < count; i++ {
		rows = append(rows, dom.DayStatus{
			ID:      uuid.NewString(),
			CheckID: checkID,
			Date:    dateutil.AddDays(now, i),
		})
	}
	return rows, count
}

// Resize grows or shrinks the day-status set to the requested count and sets
// check.Count unconditionally (clamped to zero).
//
// Growth adds an unchecked row per new offset from the check's creation day,
// skipping dates that already have one. Shrink deletes only unchecked rows
// at sorted position >= the new count; checked rows beyond the boundary are
// kept, so Count can end up smaller than the number of live rows.
func Resize(check *dom.Check, statuses []dom.DayStatus, requestedCount int) Plan {
	newCount := requestedCount
	if newCount < 0 {
		newCount = 0
	}

	var p Plan
	switch {
	case newCount > check.Count:
		existing := make(map[time.Time]bool, len(statuses))
		for _, ds := range statuses {
			existing[dateutil.DayUTC(ds.Date)] = true
		}
		for i := check.Count; i < newCount; i++ {
			date := dateutil.AddDays(check.CreatedAt, i)
			if existing[date] {
				continue
			}
			p.Created = append(p.Created, dom.DayStatus{
				ID:      uuid.NewString(),
				CheckID: check.ID,
				Date:    date,
			})
		}
	case newCount < check.Count:
		sorted := sortedByDate(statuses)
		if newCount < len(sorted) {
			for _, ds := range sorted[newCount:] {
				if !ds.IsChecked {
					p.DeletedIDs = append(p.DeletedIDs, ds.ID)
				}
			}
		}
	}

	check.Count = newCount
	return p
}

// CheckToday marks today's row as checked, creating it if absent. Repeated
// calls are a no-op beyond refreshing CheckedAt. When the created row falls
// beyond the current window, Count grows by exactly one, even if today is
// far past the window; the resulting offset gap is accepted.
func CheckToday(check *dom.Check, statuses []dom.DayStatus, now time.Time) Plan {
	for _, ds := range statuses {
		if dateutil.SameDay(ds.Date, now) {
			checkedAt := now
			ds.IsChecked = true
			ds.CheckedAt = &checkedAt
			return Plan{Updated: []dom.DayStatus{ds}}
		}
	}

	checkedAt := now
	row := dom.DayStatus{
		ID:        uuid.NewString(),
		CheckID:   check.ID,
		Date:      dateutil.DayUTC(now),
		IsChecked: true,
		CheckedAt: &checkedAt,
	}
	if dateutil.DaysBetween(check.CreatedAt, now) > check.Count-1 {
		check.Count++
	}
	return Plan{Created: []dom.DayStatus{row}}
}

// UncheckToday clears today's checked row. A missing row and an
// already-unchecked row both fail with ErrNoEntryToday; the two cases are
// indistinguishable to the caller.
func UncheckToday(statuses []dom.DayStatus, now time.Time) (Plan, error) {
	for _, ds := range statuses {
		if dateutil.SameDay(ds.Date, now) {
			if !ds.IsChecked {
				return Plan{}, ErrNoEntryToday
			}
			ds.IsChecked = false
			ds.CheckedAt = nil
			return Plan{Updated: []dom.DayStatus{ds}}, nil
		}
	}
	return Plan{}, ErrNoEntryToday
}

func sortedByDate(statuses []dom.DayStatus) []dom.DayStatus {
	out := make([]dom.DayStatus, len(statuses))
	copy(out, statuses)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
