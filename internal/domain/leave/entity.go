package leave

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// LeaveRequest is a single-day standup exemption. Only approved requests
// affect the submission status for that day.
type LeaveRequest struct {
	ID         string
	UserID     string
	Date       time.Time
	Reason     string
	Status     RequestStatus
	ReviewedBy *string
	ReviewedAt *time.Time
	ReviewNote *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	UserName *string
}
