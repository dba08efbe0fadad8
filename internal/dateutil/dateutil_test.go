package dateutil

import (
	"testing"
	"time"
)

func TestDayUTCNormalizesOffsets(t *testing.T) {
	// 23:30 UTC+5 on March 2 is 18:30 UTC the same day.
	zone := time.FixedZone("UTC+5", 5*60*60)
	aware := time.Date(2024, 3, 2, 23, 30, 0, 0, zone)

	day := DayUTC(aware)
	want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Errorf("DayUTC(%v) = %v, want %v", aware, day, want)
	}
}

func TestDayUTCCrossesMidnight(t *testing.T) {
	// 01:30 UTC+5 is still the previous UTC day.
	zone := time.FixedZone("UTC+5", 5*60*60)
	aware := time.Date(2024, 3, 2, 1, 30, 0, 0, zone)

	day := DayUTC(aware)
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Errorf("DayUTC(%v) = %v, want %v", aware, day, want)
	}
}

func TestSameDayIgnoresTimeComponent(t *testing.T) {
	a := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 2, 23, 59, 59, 0, time.UTC)
	if !SameDay(a, b) {
		t.Errorf("SameDay(%v, %v) = false, want true", a, b)
	}
	c := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	if SameDay(a, c) {
		t.Errorf("SameDay(%v, %v) = true, want false", a, c)
	}
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 2, 28, 10, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)
	// 2024 is a leap year: Feb 28 -> Mar 2 is 3 days.
	if got := DaysBetween(a, b); got != 3 {
		t.Errorf("DaysBetween = %d, want 3", got)
	}
	if got := DaysBetween(b, a); got != -3 {
		t.Errorf("DaysBetween reversed = %d, want -3", got)
	}
	if got := DaysBetween(a, a); got != 0 {
		t.Errorf("DaysBetween same instant = %d, want 0", got)
	}
}

func TestAddDays(t *testing.T) {
	anchor := time.Date(2024, 12, 30, 15, 45, 0, 0, time.UTC)
	got := AddDays(anchor, 3)
	want := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddDays(%v, 3) = %v, want %v", anchor, got, want)
	}
}
