package leave

import (
	"context"
)

type LeaveService interface {
	// Create files a standup exemption request for the caller
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// GetMyLeaves lists the caller's leave requests
	GetMyLeaves(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, int64, error)

	// List lists leave requests across users for manager review
	List(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, int64, error)

	// Approve approves a pending request
	Approve(ctx context.Context, id string) (LeaveResponse, error)

	// Reject rejects a pending request
	Reject(ctx context.Context, id string, req RejectLeaveRequest) (LeaveResponse, error)
}
