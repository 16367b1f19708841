package leave

import (
	"context"
)

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetApprovedByUserAndDate returns the approved leave for (user, date), if
	// any. Input to the submission status engine; returns nil when absent.
	GetApprovedByUserAndDate(ctx context.Context, userID string, dateLocal string) (*LeaveRequest, error)

	// ExistsByUserAndDate checks the one-request-per-day invariant
	ExistsByUserAndDate(ctx context.Context, userID string, dateLocal string) (bool, error)

	// List retrieves leave requests with filters and pagination
	List(ctx context.Context, filter LeaveFilter) ([]LeaveRequest, int64, error)

	// UpdateStatus transitions a pending request to approved or rejected
	UpdateStatus(ctx context.Context, id string, status RequestStatus, reviewerID string, note *string) error
}
