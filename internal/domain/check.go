package domain

import "time"

// Check is a user-defined recurring habit tracked over `Count` calendar days
// starting at CreatedAt's UTC day.
// Does not depend on Gin, Postgres or Redis.
type Check struct {
	ID        string
	UserID    int64
	Name      string
	Count     int
	CreatedAt time.Time
}

// DayStatus is the completion record for one calendar day of one check.
// At most one row exists per (check, UTC calendar day).
type DayStatus struct {
	ID        string
	CheckID   string
	Date      time.Time
	IsChecked bool
	CheckedAt *time.Time
}
