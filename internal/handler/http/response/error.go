package response

import (
	"errors"
	"net/http"

	"github.com/teampulse/standup-backend-go/internal/domain/auth"
	"github.com/teampulse/standup-backend-go/internal/domain/deliverable"
	"github.com/teampulse/standup-backend-go/internal/domain/department"
	"github.com/teampulse/standup-backend-go/internal/domain/leave"
	"github.com/teampulse/standup-backend-go/internal/domain/standup"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
	"github.com/teampulse/standup-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountDeactivated):
		Forbidden(w, "Account deactivated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrSuperadminAccessRequired):
		Forbidden(w, "Superadmin access required")
	case errors.Is(err, user.ErrCannotDeactivateSuperadmin):
		Forbidden(w, "Superadmin account cannot be deactivated")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNotEmpty):
		Conflict(w, "Department still has members")
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "Department name already exists")

	// Standup domain errors
	case errors.Is(err, standup.ErrAlreadySubmittedToday):
		Conflict(w, "Standup already submitted today")
	case errors.Is(err, standup.ErrWindowClosed):
		UnprocessableEntity(w, "Submission window is closed")
	case errors.Is(err, standup.ErrWeekendSubmission):
		UnprocessableEntity(w, "Standups are not collected on weekends")
	case errors.Is(err, standup.ErrOnApprovedLeave):
		UnprocessableEntity(w, "You are on approved leave today")
	case errors.Is(err, standup.ErrStandupNotFound):
		NotFound(w, "Standup not found")
	case errors.Is(err, standup.ErrMediaProcessing):
		BadGateway(w, "Media processing service is unavailable")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestExists):
		Conflict(w, "A leave request already exists for this date")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrLeaveDateInPast):
		BadRequest(w, "Leave date must not be in the past", nil)

	// Deliverable domain errors
	case errors.Is(err, deliverable.ErrDayOutOfRange):
		BadRequest(w, "Day number is outside the campaign range", nil)
	case errors.Is(err, deliverable.ErrDeliverableNotFound):
		NotFound(w, "Deliverable not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
