package standup

import "errors"

// Standup domain errors
var (
	// Submission errors
	ErrAlreadySubmittedToday = errors.New("you have already submitted a standup today")
	ErrWindowClosed          = errors.New("the submission window is closed")
	ErrWeekendSubmission     = errors.New("standups are not required on weekends")
	ErrOnApprovedLeave       = errors.New("you are on approved leave today")

	// General errors
	ErrStandupNotFound = errors.New("standup record not found")
	ErrUnauthorized    = errors.New("unauthorized to access this standup record")
	ErrMediaProcessing = errors.New("media processing failed")
)
