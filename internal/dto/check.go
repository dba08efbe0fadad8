package dto

import "time"

// CreateCheckRequest is the JSON body for POST /checks. A negative count is
// accepted and clamped to zero server-side.
type CreateCheckRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=120"`
	Count int    `json:"count"`
}

// UpdateCheckRequest is the JSON body for PUT /checks/:id. Nil fields are
// left unchanged; name and count updates are independent.
type UpdateCheckRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=120"`
	Count *int    `json:"count"`
}

// DayStatusResponse is one tracked day of a check.
type DayStatusResponse struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	IsChecked bool       `json:"is_checked"`
	CheckedAt *time.Time `json:"checked_at"`
}

// CheckResponse is the full snapshot of a check with derived statistics.
// Days are ordered ascending by date.
type CheckResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Count         int                 `json:"count"`
	CreatedAt     time.Time           `json:"created_at"`
	PassedDays    int                 `json:"passed_days"`
	Percentage    int                 `json:"percentage"`
	CurrentStreak int                 `json:"current_streak"`
	LongestStreak int                 `json:"longest_streak"`
	Days          []DayStatusResponse `json:"days"`
}

type CheckListResponse struct {
	Checks []CheckResponse `json:"checks"`
}
