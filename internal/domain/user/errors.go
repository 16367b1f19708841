package user

import "errors"

// User domain errors
var (
	ErrUserNotFound               = errors.New("user not found")
	ErrEmailExists                = errors.New("email already registered")
	ErrUserInactive               = errors.New("user account is deactivated")
	ErrManagerAccessRequired      = errors.New("manager access required")
	ErrSuperadminAccessRequired   = errors.New("superadmin access required")
	ErrInvalidRole                = errors.New("invalid role")
	ErrInvalidSubmissionMethod    = errors.New("invalid submission method")
	ErrCannotDeactivateSuperadmin = errors.New("superadmin account cannot be deactivated")
)
