package stats

import (
	"testing"
	"time"

	"github.com/anapiyani/Checkdaily-backend/internal/dateutil"
	dom "github.com/anapiyani/Checkdaily-backend/internal/domain"
)

var created = time.Date(2024, 3, 1, 9, 15, 0, 0, time.UTC)

// day returns the UTC day at the given offset from the creation day.
func day(offset int) time.Time {
	return dateutil.AddDays(created, offset)
}

// row builds a day-status at the given offset.
func row(offset int, checked bool) dom.DayStatus {
	ds := dom.DayStatus{ID: "row", CheckID: "check-1", Date: day(offset), IsChecked: checked}
	if checked {
		at := day(offset).Add(20 * time.Hour)
		ds.CheckedAt = &at
	}
	return ds
}

func testCheck(count int) dom.Check {
	return dom.Check{ID: "check-1", UserID: 1, Name: "run", Count: count, CreatedAt: created}
}

func TestPassedDaysOnCreationDay(t *testing.T) {
	s := Compute(testCheck(5), nil, created.Add(3*time.Hour))
	if s.PassedDays != 1 {
		t.Errorf("passed days = %d, want 1", s.PassedDays)
	}
}

func TestPassedDaysInclusive(t *testing.T) {
	// Day 4 after creation: 5 days have passed, both endpoints included.
	s := Compute(testCheck(5), nil, day(4))
	if s.PassedDays != 5 {
		t.Errorf("passed days = %d, want 5", s.PassedDays)
	}
}

func TestPercentageTruncates(t *testing.T) {
	// 4 of 10 checked -> 40. Also 1 of 3 -> 33, not 34.
	statuses := []dom.DayStatus{row(0, true), row(1, true), row(2, true), row(3, true)}
	s := Compute(testCheck(10), statuses, day(5))
	if s.Percentage != 40 {
		t.Errorf("percentage = %d, want 40", s.Percentage)
	}

	s = Compute(testCheck(3), []dom.DayStatus{row(0, true)}, day(2))
	if s.Percentage != 33 {
		t.Errorf("percentage = %d, want 33 (floor)", s.Percentage)
	}
}

func TestPercentageZeroCount(t *testing.T) {
	s := Compute(testCheck(0), []dom.DayStatus{row(0, true)}, day(1))
	if s.Percentage != 0 {
		t.Errorf("percentage = %d, want 0 when count is 0", s.Percentage)
	}
}

func TestPercentageExcludesFutureCheckedRows(t *testing.T) {
	// A checked row dated after today does not count.
	statuses := []dom.DayStatus{row(0, true), row(5, true)}
	s := Compute(testCheck(10), statuses, day(2))
	if s.Percentage != 10 {
		t.Errorf("percentage = %d, want 10", s.Percentage)
	}
}

func TestStreaksWithUncheckedBreak(t *testing.T) {
	// Checked on days 1,2,3, unchecked day 4, checked day 5; today is day 5.
	statuses := []dom.DayStatus{
		row(1, true), row(2, true), row(3, true), row(4, false), row(5, true),
	}
	s := Compute(testCheck(6), statuses, day(5))
	if s.LongestStreak != 3 {
		t.Errorf("longest streak = %d, want 3", s.LongestStreak)
	}
	if s.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", s.CurrentStreak)
	}
}

func TestStreakGapBreaksLikeUnchecked(t *testing.T) {
	// No row at all for day 2: days 0,1 and 3,4 are separate runs.
	statuses := []dom.DayStatus{row(0, true), row(1, true), row(3, true), row(4, true)}
	s := Compute(testCheck(5), statuses, day(4))
	if s.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", s.LongestStreak)
	}
	if s.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2", s.CurrentStreak)
	}
}

func TestCurrentStreakZeroWhenTodayUnchecked(t *testing.T) {
	statuses := []dom.DayStatus{row(0, true), row(1, true), row(2, false)}
	s := Compute(testCheck(3), statuses, day(2))
	if s.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0", s.CurrentStreak)
	}
	if s.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", s.LongestStreak)
	}
}

func TestCurrentStreakZeroWhenTodayMissing(t *testing.T) {
	statuses := []dom.DayStatus{row(0, true), row(1, true)}
	s := Compute(testCheck(5), statuses, day(3))
	if s.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0", s.CurrentStreak)
	}
}

func TestCurrentStreakRunsBackToCreation(t *testing.T) {
	statuses := []dom.DayStatus{row(0, true), row(1, true), row(2, true)}
	s := Compute(testCheck(3), statuses, day(2))
	if s.CurrentStreak != 3 {
		t.Errorf("current streak = %d, want 3", s.CurrentStreak)
	}
	if s.LongestStreak != 3 {
		t.Errorf("longest streak = %d, want 3", s.LongestStreak)
	}
}

func TestStreakHandlesOffsetStoredDates(t *testing.T) {
	// Rows stored with a zone offset still land on the right UTC day.
	zone := time.FixedZone("UTC+3", 3*60*60)
	statuses := []dom.DayStatus{
		{ID: "a", CheckID: "check-1", Date: time.Date(2024, 3, 1, 3, 0, 0, 0, zone), IsChecked: true},
		{ID: "b", CheckID: "check-1", Date: time.Date(2024, 3, 2, 3, 0, 0, 0, zone), IsChecked: true},
	}
	s := Compute(testCheck(3), statuses, day(1))
	if s.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", s.LongestStreak)
	}
	if s.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2", s.CurrentStreak)
	}
}

func TestYearlyActivityLeapYear(t *testing.T) {
	// Two checks completed on 2024-03-01, one on 2024-03-02.
	mar1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	mar2 := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	statuses := []dom.DayStatus{
		{ID: "a", CheckID: "check-1", Date: mar1, IsChecked: true},
		{ID: "b", CheckID: "check-2", Date: mar1, IsChecked: true},
		{ID: "c", CheckID: "check-1", Date: mar2, IsChecked: true},
	}

	grid, maxCount := Yearly(2024, statuses)

	if len(grid) != 366 {
		t.Fatalf("grid has %d days, want 366 (2024 is a leap year)", len(grid))
	}
	if maxCount != 2 {
		t.Errorf("max count = %d, want 2", maxCount)
	}
	byDate := map[time.Time]int{}
	for _, d := range grid {
		byDate[d.Date] = d.CompletedCount
	}
	if byDate[mar1] != 2 {
		t.Errorf("2024-03-01 count = %d, want 2", byDate[mar1])
	}
	if byDate[mar2] != 1 {
		t.Errorf("2024-03-02 count = %d, want 1", byDate[mar2])
	}
	zeros := 0
	for _, d := range grid {
		if d.CompletedCount == 0 {
			zeros++
		}
	}
	if zeros != 364 {
		t.Errorf("%d zero days, want 364", zeros)
	}
}

func TestYearlyActivityIgnoresOtherYearsAndUnchecked(t *testing.T) {
	statuses := []dom.DayStatus{
		{ID: "a", Date: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), IsChecked: true},
		{ID: "b", Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), IsChecked: true},
		{ID: "c", Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), IsChecked: false},
	}
	grid, maxCount := Yearly(2024, statuses)
	if maxCount != 0 {
		t.Errorf("max count = %d, want 0", maxCount)
	}
	for _, d := range grid {
		if d.CompletedCount != 0 {
			t.Errorf("day %v count = %d, want 0", d.Date, d.CompletedCount)
		}
	}
}

func TestSortByDateDoesNotMutateInput(t *testing.T) {
	statuses := []dom.DayStatus{row(2, false), row(0, true), row(1, false)}
	sorted := SortByDate(statuses)
	if !sorted[0].Date.Equal(day(0)) || !sorted[2].Date.Equal(day(2)) {
		t.Errorf("not sorted ascending: %v", sorted)
	}
	if !statuses[0].Date.Equal(day(2)) {
		t.Error("input slice was reordered")
	}
}
