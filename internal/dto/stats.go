package dto

// YearDayActivity is one cell of the yearly activity grid.
type YearDayActivity struct {
	Date           string `json:"date"` // YYYY-MM-DD
	CompletedCount int    `json:"completed_count"`
}

// YearActivityResponse is the GitHub-style activity grid for one year:
// every calendar day is present, zero-count days included.
type YearActivityResponse struct {
	Year     int               `json:"year"`
	MaxCount int               `json:"max_count"`
	Days     []YearDayActivity `json:"days"`
}
