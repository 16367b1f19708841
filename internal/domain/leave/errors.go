package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestExists           = errors.New("a leave request already exists for this date")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrLeaveDateInPast              = errors.New("leave date must not be in the past")
	ErrUnauthorized                 = errors.New("unauthorized to access this leave request")
)
