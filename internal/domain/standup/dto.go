package standup

import (
	"mime/multipart"

	"github.com/teampulse/standup-backend-go/internal/pkg/validator"
)

// SubmitRequest is the text submission payload.
type SubmitRequest struct {
	Yesterday string  `json:"yesterday"`
	Today     string  `json:"today"`
	Blockers  *string `json:"blockers,omitempty"`
	TestMode  bool    `json:"test_mode,omitempty"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Yesterday) {
		errs = append(errs, validator.ValidationError{
			Field:   "yesterday",
			Message: "yesterday is required",
		})
	}
	if validator.IsEmpty(r.Today) {
		errs = append(errs, validator.ValidationError{
			Field:   "today",
			Message: "today is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SubmitMediaRequest is the audio/image submission payload. The media file is
// stored first, then the processing webhook extracts the standup fields.
type SubmitMediaRequest struct {
	MediaType  string                `json:"media_type"` // audio, image
	TestMode   bool                  `json:"test_mode,omitempty"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *SubmitMediaRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.MediaType, []string{"audio", "image"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "media_type",
			Message: "media_type must be audio or image",
		})
	}
	if r.File == nil || r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "media file is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StandupResponse represents a standup record in API responses
type StandupResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	UserName    *string `json:"user_name,omitempty"`
	Date        string  `json:"date"`
	SubmittedAt string  `json:"submitted_at"`
	Yesterday   string  `json:"yesterday"`
	Today       string  `json:"today"`
	Blockers    *string `json:"blockers,omitempty"`
	Method      string  `json:"method"`
	MediaURL    *string `json:"media_url,omitempty"`
	Transcript  *string `json:"transcript,omitempty"`
	Status      string  `json:"status"`
}

// TodayStatusResponse is the member's submission-window state for today.
type TodayStatusResponse struct {
	Status        string  `json:"status"`
	SubmittedAt   *string `json:"submitted_at,omitempty"`
	CanSubmit     bool    `json:"can_submit"`
	TimeRemaining string  `json:"time_remaining,omitempty"`
}

// StatsResponse carries the streak and compliance numbers for a member.
type StatsResponse struct {
	CurrentStreak     int `json:"current_streak"`
	WeeklyCompliance  int `json:"weekly_compliance"`
	MonthlyCompliance int `json:"monthly_compliance"`
}

// MyStandupFilter filters a member's own history
type MyStandupFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status    *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// StandupFilter filters manager-level listings
type StandupFilter struct {
	UserID       *string `json:"user_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Date         *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ListStandupResponse wraps a page of standups
type ListStandupResponse struct {
	Standups   []StandupResponse `json:"standups"`
	TotalItems int64             `json:"total_items"`
}
