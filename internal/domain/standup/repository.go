package standup

import (
	"context"
	"time"
)

// StandupRepository defines data access methods for standup records.
type StandupRepository interface {
	// Create creates a new standup record
	Create(ctx context.Context, standup Standup) (Standup, error)

	// GetByID retrieves a standup by ID
	GetByID(ctx context.Context, id string) (Standup, error)

	// GetByUserAndDate retrieves the standup for a user on a specific day.
	// Used to enforce the one-record-per-day invariant; returns nil when absent.
	GetByUserAndDate(ctx context.Context, userID string, dateLocal string) (*Standup, error)

	// GetSubmittedDates returns the distinct submitted dates for a user in
	// [from, to], day granularity. Input for the streak and compliance math.
	GetSubmittedDates(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error)

	// GetMyStandups retrieves standups for a specific user, newest first
	GetMyStandups(ctx context.Context, userID string, filter MyStandupFilter) ([]Standup, int64, error)

	// List retrieves standups with filters for manager views
	List(ctx context.Context, filter StandupFilter) ([]Standup, int64, error)

	// SetTranscript stores the transcription result delivered by the media pipeline
	SetTranscript(ctx context.Context, id string, transcript string) error

	// MarkMissed inserts missed rows for every active member without a
	// submission or approved leave on dateLocal. Returns affected row count.
	MarkMissed(ctx context.Context, dateLocal string) (int64, error)
}
