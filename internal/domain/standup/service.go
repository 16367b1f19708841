package standup

import (
	"context"
)

type StandupService interface {
	// Submit records a text standup for today
	Submit(ctx context.Context, req SubmitRequest) (StandupResponse, error)

	// SubmitMedia stores an audio/image standup and dispatches it to the
	// media processing webhook for transcription
	SubmitMedia(ctx context.Context, req SubmitMediaRequest) (StandupResponse, error)

	// GetTodayStatus derives the caller's submission-window state for today
	GetTodayStatus(ctx context.Context, testMode bool) (TodayStatusResponse, error)

	// GetMyStandups lists the caller's submission history
	GetMyStandups(ctx context.Context, filter MyStandupFilter) ([]StandupResponse, int64, error)

	// GetMyStats computes the caller's streak and compliance rates
	GetMyStats(ctx context.Context) (StatsResponse, error)

	// List lists standups across users for manager views
	List(ctx context.Context, filter StandupFilter) ([]StandupResponse, int64, error)

	// ApplyTranscript stores the transcription result posted back by the
	// media processing pipeline
	ApplyTranscript(ctx context.Context, standupID string, transcript string) error
}
