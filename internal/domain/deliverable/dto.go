package deliverable

import (
	"fmt"
	"strings"

	"github.com/teampulse/standup-backend-go/internal/pkg/validator"
)

// UpsertDeliverableRequest creates or replaces the deliverable for a day slot.
type UpsertDeliverableRequest struct {
	DayNumber    int     `json:"day_number"`
	DriveLink    string  `json:"drive_link"`
	LinkedinLink *string `json:"linkedin_link,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

func (r *UpsertDeliverableRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DayNumber < DayRangeStart || r.DayNumber > DayRangeEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "day_number",
			Message: fmt.Sprintf("day_number must be between %d and %d", DayRangeStart, DayRangeEnd),
		})
	}

	if validator.IsEmpty(r.DriveLink) {
		errs = append(errs, validator.ValidationError{
			Field:   "drive_link",
			Message: "drive_link is required",
		})
	} else if !strings.HasPrefix(r.DriveLink, "http://") && !strings.HasPrefix(r.DriveLink, "https://") {
		errs = append(errs, validator.ValidationError{
			Field:   "drive_link",
			Message: "drive_link must be a valid URL",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DeliverableResponse represents a deliverable in API responses
type DeliverableResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	DayNumber    int     `json:"day_number"`
	DriveLink    string  `json:"drive_link"`
	LinkedinLink *string `json:"linkedin_link,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// UserGridRow is one user's row in the campaign grid.
type UserGridRow struct {
	UserID         string       `json:"user_id"`
	UserName       string       `json:"user_name"`
	DepartmentID   *string      `json:"department_id,omitempty"`
	Days           map[int]bool `json:"days"`
	SubmittedCount int          `json:"submitted_count"`
	MissingCount   int          `json:"missing_count"`
	CompletionRate int          `json:"completion_rate"`
}

// DepartmentRollup aggregates member counts for one department.
// Rates are computed from summed counts, never averaged member rates.
type DepartmentRollup struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	MemberCount    int    `json:"member_count"`
	SubmittedCount int    `json:"submitted_count"`
	PossibleCount  int    `json:"possible_count"`
	CompletionRate int    `json:"completion_rate"`
}

// GridReportResponse is the manager-facing campaign report
type GridReportResponse struct {
	DayRangeStart int                `json:"day_range_start"`
	DayRangeEnd   int                `json:"day_range_end"`
	Users         []UserGridRow      `json:"users"`
	Departments   []DepartmentRollup `json:"departments"`
}
