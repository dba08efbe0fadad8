package days

import (
	"errors"
	"testing"
	"time"

	"github.com/anapiyani/Checkdaily-backend/internal/dateutil"
	dom "github.com/anapiyani/Checkdaily-backend/internal/domain"
)

var testNow = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

func newTestCheck(count int) *dom.Check {
	return &dom.Check{
		ID:        "check-1",
		UserID:    1,
		Name:      "read",
		Count:     count,
		CreatedAt: testNow,
	}
}

func TestGenerateProducesOneRowPerOffset(t *testing.T) {
	rows, count := Generate("check-1", 5, testNow)
	if count != 5 {
		t.Fatalf("count = %d, want 5", count)
	}
	if len(rows) != 5 {
		t.Fatalf("len(rows) = %d, want 5", len(rows))
	}
	for i, ds := range rows {
		want := dateutil.AddDays(testNow, i)
		if !ds.Date.Equal(want) {
			t.Errorf("row %d date = %v, want %v", i, ds.Date, want)
		}
		if ds.IsChecked || ds.CheckedAt != nil {
			t.Errorf("row %d should start unchecked", i)
		}
		if ds.CheckID != "check-1" {
			t.Errorf("row %d check id = %q", i, ds.CheckID)
		}
	}
	// Dates must be distinct.
	seen := map[time.Time]bool{}
	for _, ds := range rows {
		if seen[ds.Date] {
			t.Errorf("duplicate date %v", ds.Date)
		}
		seen[ds.Date] = true
	}
}

func TestGenerateClampsNegativeCount(t *testing.T) {
	rows, count := Generate("check-1", -3, testNow)
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if len(rows) != 0 {
		t.Errorf("len(rows) = %d, want 0", len(rows))
	}
}

func TestResizeUpAddsOnlyNewOffsets(t *testing.T) {
	check := newTestCheck(0)
	rows, count := Generate(check.ID, 3, testNow)
	check.Count = count

	// Check offset 1 so we can verify state survives the resize.
	rows[1].IsChecked = true
	at := testNow
	rows[1].CheckedAt = &at

	plan := Resize(check, rows, 5)

	if check.Count != 5 {
		t.Errorf("count = %d, want 5", check.Count)
	}
	if len(plan.Created) != 2 {
		t.Fatalf("created %d rows, want 2", len(plan.Created))
	}
	for i, ds := range plan.Created {
		want := dateutil.AddDays(check.CreatedAt, 3+i)
		if !ds.Date.Equal(want) {
			t.Errorf("created row %d date = %v, want %v", i, ds.Date, want)
		}
		if ds.IsChecked {
			t.Errorf("created row %d should be unchecked", i)
		}
	}
	if len(plan.Updated) != 0 || len(plan.DeletedIDs) != 0 {
		t.Errorf("resize up must not touch existing rows: %+v", plan)
	}
}

func TestResizeUpSkipsExistingDates(t *testing.T) {
	check := newTestCheck(2)
	rows, _ := Generate(check.ID, 2, testNow)
	// A row at offset 3 already exists (e.g. from a past check-today).
	extra := dom.DayStatus{ID: "extra", CheckID: check.ID, Date: dateutil.AddDays(testNow, 3), IsChecked: true}
	rows = append(rows, extra)

	plan := Resize(check, rows, 5)

	// Offsets 2 and 4 are new; offset 3 is occupied.
	if len(plan.Created) != 2 {
		t.Fatalf("created %d rows, want 2", len(plan.Created))
	}
	wantDates := []time.Time{dateutil.AddDays(testNow, 2), dateutil.AddDays(testNow, 4)}
	for i, ds := range plan.Created {
		if !ds.Date.Equal(wantDates[i]) {
			t.Errorf("created row %d date = %v, want %v", i, ds.Date, wantDates[i])
		}
	}
}

func TestResizeDownKeepsCheckedRowsBeyondBoundary(t *testing.T) {
	check := newTestCheck(5)
	rows, _ := Generate(check.ID, 5, testNow)
	// Offset 4 is checked and must survive the shrink.
	rows[4].IsChecked = true
	at := testNow
	rows[4].CheckedAt = &at

	plan := Resize(check, rows, 2)

	if check.Count != 2 {
		t.Errorf("count = %d, want 2", check.Count)
	}
	// Unchecked offsets 2 and 3 go; checked offset 4 stays.
	if len(plan.DeletedIDs) != 2 {
		t.Fatalf("deleted %d rows, want 2", len(plan.DeletedIDs))
	}
	deleted := map[string]bool{}
	for _, id := range plan.DeletedIDs {
		deleted[id] = true
	}
	if !deleted[rows[2].ID] || !deleted[rows[3].ID] {
		t.Errorf("expected offsets 2 and 3 deleted, got %v", plan.DeletedIDs)
	}
	if deleted[rows[4].ID] {
		t.Error("checked offset 4 must not be deleted")
	}
	if deleted[rows[0].ID] || deleted[rows[1].ID] {
		t.Error("rows within the new count must not be deleted")
	}
}

func TestResizeClampsNegativeCount(t *testing.T) {
	check := newTestCheck(3)
	rows, _ := Generate(check.ID, 3, testNow)

	plan := Resize(check, rows, -7)

	if check.Count != 0 {
		t.Errorf("count = %d, want 0", check.Count)
	}
	// All three rows are unchecked and beyond the new boundary.
	if len(plan.DeletedIDs) != 3 {
		t.Errorf("deleted %d rows, want 3", len(plan.DeletedIDs))
	}
}

func TestResizeToSameCountIsNoop(t *testing.T) {
	check := newTestCheck(3)
	rows, _ := Generate(check.ID, 3, testNow)

	plan := Resize(check, rows, 3)

	if !plan.Empty() {
		t.Errorf("expected empty plan, got %+v", plan)
	}
	if check.Count != 3 {
		t.Errorf("count = %d, want 3", check.Count)
	}
}

func TestCheckTodayUpdatesExistingRow(t *testing.T) {
	check := newTestCheck(3)
	rows, _ := Generate(check.ID, 3, testNow)

	plan := CheckToday(check, rows, testNow)

	if len(plan.Updated) != 1 || len(plan.Created) != 0 {
		t.Fatalf("expected one updated row, got %+v", plan)
	}
	got := plan.Updated[0]
	if got.ID != rows[0].ID {
		t.Errorf("updated row id = %q, want today's row %q", got.ID, rows[0].ID)
	}
	if !got.IsChecked || got.CheckedAt == nil {
		t.Error("today's row should be checked with a checked_at instant")
	}
	if check.Count != 3 {
		t.Errorf("count = %d, want unchanged 3", check.Count)
	}
}

func TestCheckTodayIsIdempotent(t *testing.T) {
	check := newTestCheck(0)

	// First call: no row for today exists, one is created and count grows.
	first := CheckToday(check, nil, testNow)
	if len(first.Created) != 1 {
		t.Fatalf("first call created %d rows, want 1", len(first.Created))
	}
	if check.Count != 1 {
		t.Errorf("count after first call = %d, want 1", check.Count)
	}

	// Second call an hour later: same row updated, count unchanged.
	later := testNow.Add(time.Hour)
	second := CheckToday(check, first.Created, later)
	if len(second.Created) != 0 || len(second.Updated) != 1 {
		t.Fatalf("second call should only update, got %+v", second)
	}
	if check.Count != 1 {
		t.Errorf("count after second call = %d, want 1", check.Count)
	}
	if got := second.Updated[0]; got.CheckedAt == nil || !got.CheckedAt.Equal(later) {
		t.Errorf("checked_at not refreshed: %v", got.CheckedAt)
	}
}

func TestCheckTodayFarBeyondWindowGrowsCountByOne(t *testing.T) {
	check := newTestCheck(3)
	rows, _ := Generate(check.ID, 3, testNow)

	// Today is 30 days past creation, far beyond the 3-day window.
	future := testNow.AddDate(0, 0, 30)
	plan := CheckToday(check, rows, future)

	if len(plan.Created) != 1 {
		t.Fatalf("created %d rows, want 1", len(plan.Created))
	}
	if !plan.Created[0].Date.Equal(dateutil.DayUTC(future)) {
		t.Errorf("created row date = %v, want %v", plan.Created[0].Date, dateutil.DayUTC(future))
	}
	// Count grows by exactly one even though the gap is much larger.
	if check.Count != 4 {
		t.Errorf("count = %d, want 4", check.Count)
	}
}

func TestCheckTodayWithinWindowKeepsCount(t *testing.T) {
	check := newTestCheck(5)
	// No rows loaded at all: today's row is materialized but offset 0 is
	// within the window, so count stays.
	plan := CheckToday(check, nil, testNow)
	if len(plan.Created) != 1 {
		t.Fatalf("created %d rows, want 1", len(plan.Created))
	}
	if check.Count != 5 {
		t.Errorf("count = %d, want 5", check.Count)
	}
}

func TestUncheckTodayClearsRow(t *testing.T) {
	check := newTestCheck(1)
	rows, _ := Generate(check.ID, 1, testNow)
	checkPlan := CheckToday(check, rows, testNow)

	plan, err := UncheckToday(checkPlan.Updated, testNow)
	if err != nil {
		t.Fatalf("UncheckToday: %v", err)
	}
	if len(plan.Updated) != 1 {
		t.Fatalf("expected one updated row, got %+v", plan)
	}
	got := plan.Updated[0]
	if got.IsChecked {
		t.Error("row should be unchecked")
	}
	if got.CheckedAt != nil {
		t.Errorf("checked_at should be cleared, got %v", got.CheckedAt)
	}
}

func TestUncheckTodayWithoutEntryFails(t *testing.T) {
	_, err := UncheckToday(nil, testNow)
	if !errors.Is(err, ErrNoEntryToday) {
		t.Errorf("err = %v, want ErrNoEntryToday", err)
	}
}

func TestUncheckTodayOnUncheckedRowFails(t *testing.T) {
	// An existing but unchecked row is rejected the same way as a missing
	// one; repeated unchecks are not idempotent.
	check := newTestCheck(1)
	rows, _ := Generate(check.ID, 1, testNow)

	_, err := UncheckToday(rows, testNow)
	if !errors.Is(err, ErrNoEntryToday) {
		t.Errorf("err = %v, want ErrNoEntryToday", err)
	}
}

func TestUncheckTodayIgnoresOtherDays(t *testing.T) {
	check := newTestCheck(3)
	rows, _ := Generate(check.ID, 3, testNow)
	// Yesterday checked, today not.
	rows[0].Date = dateutil.AddDays(testNow, -1)
	rows[0].IsChecked = true

	_, err := UncheckToday(rows[:1], testNow)
	if !errors.Is(err, ErrNoEntryToday) {
		t.Errorf("err = %v, want ErrNoEntryToday", err)
	}
}
