package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teampulse/standup-backend-go/internal/config"
	"github.com/teampulse/standup-backend-go/internal/domain/standup"
)

// StandupJobs sweeps the daily submission window.
type StandupJobs struct {
	standupRepo standup.StandupRepository
	cfg         config.StandupConfig
	location    *time.Location
	now         func() time.Time
}

func NewStandupJobs(standupRepo standup.StandupRepository, cfg config.StandupConfig, location *time.Location) *StandupJobs {
	return &StandupJobs{
		standupRepo: standupRepo,
		cfg:         cfg,
		location:    location,
		now:         time.Now,
	}
}

func (j *StandupJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_missed_standups", 15*time.Minute, j.MarkMissedStandups)
}

// MarkMissedStandups stamps missed rows for active members without a
// submission or approved leave once today's cutoff has passed. Weekends are
// never swept; they are not required submission days.
func (j *StandupJobs) MarkMissedStandups(ctx context.Context) error {
	nowLocal := j.now().In(j.location)

	if wd := nowLocal.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	cutoff, err := time.Parse("15:04", j.cfg.CutoffTime)
	if err != nil {
		return fmt.Errorf("invalid cutoff time %q: %w", j.cfg.CutoffTime, err)
	}
	cutoffToday := time.Date(
		nowLocal.Year(), nowLocal.Month(), nowLocal.Day(),
		cutoff.Hour(), cutoff.Minute(), 0, 0,
		j.location,
	)
	if nowLocal.Before(cutoffToday) {
		return nil
	}

	dateLocal := nowLocal.Format("2006-01-02")
	affected, err := j.standupRepo.MarkMissed(ctx, dateLocal)
	if err != nil {
		return fmt.Errorf("failed to mark missed standups: %w", err)
	}

	if affected > 0 {
		slog.Info("Cron: marked missed standups", "date", dateLocal, "count", affected)
	}
	return nil
}
