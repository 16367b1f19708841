package cron

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/standup-backend-go/internal/config"
	"github.com/teampulse/standup-backend-go/internal/domain/standup"
)

// stubStandupRepo records MarkMissed calls; the embedded interface panics on
// anything else, which the sweep never touches.
type stubStandupRepo struct {
	standup.StandupRepository
	markedDates []string
}

func (s *stubStandupRepo) MarkMissed(ctx context.Context, date string) (int64, error) {
	s.markedDates = append(s.markedDates, date)
	return 2, nil
}

func newSweepJobs(t *testing.T, repo *stubStandupRepo, cutoff string, now time.Time) *StandupJobs {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	jobs := NewStandupJobs(repo, config.StandupConfig{CutoffTime: cutoff}, loc)
	jobs.now = func() time.Time { return now }
	return jobs
}

func TestMarkMissedStandups_SweepsAfterCutoff(t *testing.T) {
	t.Parallel()

	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	tests := []struct {
		name       string
		now        time.Time
		wantMarked []string
	}{
		{
			name:       "weekday after cutoff sweeps today",
			now:        time.Date(2026, 2, 17, 10, 30, 0, 0, loc), // Tuesday
			wantMarked: []string{"2026-02-17"},
		},
		{
			name:       "exactly at cutoff sweeps",
			now:        time.Date(2026, 2, 17, 10, 0, 0, 0, loc),
			wantMarked: []string{"2026-02-17"},
		},
		{
			name:       "one second before cutoff does nothing",
			now:        time.Date(2026, 2, 17, 9, 59, 59, 0, loc),
			wantMarked: nil,
		},
		{
			name:       "saturday is never swept",
			now:        time.Date(2026, 2, 21, 12, 0, 0, 0, loc),
			wantMarked: nil,
		},
		{
			name:       "sunday is never swept",
			now:        time.Date(2026, 2, 22, 12, 0, 0, 0, loc),
			wantMarked: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &stubStandupRepo{}
			jobs := newSweepJobs(t, repo, "10:00", tt.now)

			err := jobs.MarkMissedStandups(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.wantMarked, repo.markedDates)
		})
	}
}

func TestMarkMissedStandups_UsesLocalDate(t *testing.T) {
	t.Parallel()

	repo := &stubStandupRepo{}
	// 18:00 UTC on the 17th is already 01:00 on the 18th in Jakarta, so the
	// sweep must target the 18th once past cutoff. Use a midnight cutoff so
	// the early-morning run sweeps.
	now := time.Date(2026, 2, 17, 18, 0, 0, 0, time.UTC)
	jobs := newSweepJobs(t, repo, "00:30", now)

	err := jobs.MarkMissedStandups(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"2026-02-18"}, repo.markedDates)
}

func TestMarkMissedStandups_InvalidCutoff(t *testing.T) {
	t.Parallel()

	repo := &stubStandupRepo{}
	jobs := newSweepJobs(t, repo, "not-a-time", time.Date(2026, 2, 17, 12, 0, 0, 0, time.UTC))

	err := jobs.MarkMissedStandups(context.Background())

	assert.Error(t, err)
	assert.Empty(t, repo.markedDates)
}
