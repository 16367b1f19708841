package standup

import (
	"fmt"
	"time"

	"github.com/teampulse/standup-backend-go/internal/domain/leave"
	"github.com/teampulse/standup-backend-go/internal/domain/standup"
)

// Window is the daily submission window, wall-clock times in the caller's
// location. Submissions open at Open and close at Cutoff; past Cutoff an
// unsubmitted weekday counts as missed.
type Window struct {
	OpenHour     int
	OpenMinute   int
	CutoffHour   int
	CutoffMinute int
}

// DefaultWindow is the 08:00-10:00 submission window.
func DefaultWindow() Window {
	return Window{OpenHour: 8, OpenMinute: 0, CutoffHour: 10, CutoffMinute: 0}
}

// ParseWindow builds a Window from "HH:MM" open and cutoff strings.
func ParseWindow(open, cutoff string) (Window, error) {
	o, err := time.Parse("15:04", open)
	if err != nil {
		return Window{}, fmt.Errorf("invalid open time %q: %w", open, err)
	}
	c, err := time.Parse("15:04", cutoff)
	if err != nil {
		return Window{}, fmt.Errorf("invalid cutoff time %q: %w", cutoff, err)
	}
	return Window{
		OpenHour:     o.Hour(),
		OpenMinute:   o.Minute(),
		CutoffHour:   c.Hour(),
		CutoffMinute: c.Minute(),
	}, nil
}

func (w Window) openAt(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), w.OpenHour, w.OpenMinute, 0, 0, now.Location())
}

func (w Window) cutoffAt(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), w.CutoffHour, w.CutoffMinute, 0, 0, now.Location())
}

// ComputeTodayStatus derives the submission state for the day of now.
// Precedence: weekend, approved leave, existing submission, past cutoff,
// pending. Test mode disables the weekend and cutoff gates only; leave and
// submission checks still apply. Pure function of its inputs; now must
// already be in the viewer's location.
func (w Window) ComputeTodayStatus(now time.Time, sub *standup.Standup, approvedLeave *leave.LeaveRequest, testMode bool) (standup.TodayStatus, *time.Time) {
	if !testMode && isWeekend(now) {
		return standup.StatusWeekend, nil
	}

	if approvedLeave != nil {
		return standup.StatusOnLeave, nil
	}

	if sub != nil {
		submittedAt := sub.SubmittedAt
		return standup.StatusSubmitted, &submittedAt
	}

	if !testMode && !now.Before(w.cutoffAt(now)) {
		return standup.StatusMissed, nil
	}

	return standup.StatusPending, nil
}

// CanSubmit reports whether a submission is allowed right now. Test mode
// bypasses all gating; otherwise the status must be pending and now must be
// inside the open window.
func (w Window) CanSubmit(status standup.TodayStatus, now time.Time, testMode bool) bool {
	if testMode {
		return true
	}
	if status != standup.StatusPending {
		return false
	}
	return !now.Before(w.openAt(now)) && now.Before(w.cutoffAt(now))
}

// TimeRemaining formats the countdown to the cutoff, e.g. "1h 23m remaining".
// Returns the empty string past the cutoff or in test mode.
func (w Window) TimeRemaining(now time.Time, testMode bool) string {
	if testMode {
		return ""
	}
	cutoff := w.cutoffAt(now)
	if !now.Before(cutoff) {
		return ""
	}
	remaining := cutoff.Sub(now)
	hours := int(remaining.Hours())
	minutes := int(remaining.Minutes()) % 60
	return fmt.Sprintf("%dh %dm remaining", hours, minutes)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
