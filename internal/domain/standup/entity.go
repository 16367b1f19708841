package standup

import (
	"time"
)

// TodayStatus is the derived submission state for the current day.
type TodayStatus string

const (
	StatusSubmitted TodayStatus = "submitted"
	StatusPending   TodayStatus = "pending"
	StatusMissed    TodayStatus = "missed"
	StatusOnLeave   TodayStatus = "on_leave"
	StatusWeekend   TodayStatus = "weekend"
)

type Standup struct {
	ID           string
	UserID       string
	DepartmentID *string
	Date         time.Time
	SubmittedAt  time.Time
	Yesterday    string
	Today        string
	Blockers     *string
	Method       string
	MediaURL     *string
	Transcript   *string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	UserName *string
}
