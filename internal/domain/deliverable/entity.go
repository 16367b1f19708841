package deliverable

import "time"

// The deliverable campaign covers a fixed inclusive day-number range.
const (
	DayRangeStart = 45
	DayRangeEnd   = 70
	TotalDays     = DayRangeEnd - DayRangeStart + 1
)

type Deliverable struct {
	ID           string
	UserID       string
	DayNumber    int
	DriveLink    string
	LinkedinLink *string
	Notes        *string
	CreatedAt    time.Time

	// DTO
	UserName *string
}
