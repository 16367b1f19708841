package standup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	domain "github.com/teampulse/standup-backend-go/internal/domain/standup"

	"github.com/teampulse/standup-backend-go/internal/domain/leave"
)

// Fixtures: 2026-02-09 is a Monday, 2026-02-14 a Saturday.
func weekdayAt(hour, min, sec int) time.Time {
	return time.Date(2026, 2, 9, hour, min, sec, 0, time.UTC)
}

func saturdayAt(hour, min int) time.Time {
	return time.Date(2026, 2, 14, hour, min, 0, 0, time.UTC)
}

func submissionAt(t time.Time) *domain.Standup {
	return &domain.Standup{
		ID:          "standup-1",
		UserID:      "user-1",
		Date:        time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()),
		SubmittedAt: t,
		Status:      "submitted",
	}
}

func approvedLeave() *leave.LeaveRequest {
	return &leave.LeaveRequest{
		ID:     "leave-1",
		UserID: "user-1",
		Status: leave.StatusApproved,
	}
}

func TestComputeTodayStatus_WeekendWinsRegardlessOfRecords(t *testing.T) {
	t.Parallel()
	w := DefaultWindow()

	cases := []struct {
		name  string
		sub   *domain.Standup
		leave *leave.LeaveRequest
	}{
		{"no records", nil, nil},
		{"with submission", submissionAt(saturdayAt(9, 0)), nil},
		{"with approved leave", nil, approvedLeave()},
		{"with both", submissionAt(saturdayAt(9, 0)), approvedLeave()},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status, _ := w.ComputeTodayStatus(saturdayAt(9, 0), c.sub, c.leave, false)
			assert.Equal(t, domain.StatusWeekend, status)
		})
	}

	// Sunday too
	status, _ := w.ComputeTodayStatus(time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC), nil, nil, false)
	assert.Equal(t, domain.StatusWeekend, status)
}

func TestComputeTodayStatus_LeavePrecedesMissedAndPending(t *testing.T) {
	t.Parallel()
	w := DefaultWindow()

	// Before cutoff
	status, _ := w.ComputeTodayStatus(weekdayAt(9, 0, 0), nil, approvedLeave(), false)
	assert.Equal(t, domain.StatusOnLeave, status)

	// After cutoff leave still wins over missed
	status, _ = w.ComputeTodayStatus(weekdayAt(14, 0, 0), nil, approvedLeave(), false)
	assert.Equal(t, domain.StatusOnLeave, status)
}

func TestComputeTodayStatus_SubmittedCarriesTimestamp(t *testing.T) {
	t.Parallel()
	w := DefaultWindow()

	sub := submissionAt(weekdayAt(8, 42, 0))
	status, submittedAt := w.ComputeTodayStatus(weekdayAt(9, 0, 0), sub, nil, false)

	assert.Equal(t, domain.StatusSubmitted, status)
	if assert.NotNil(t, submittedAt) {
		assert.Equal(t, weekdayAt(8, 42, 0), *submittedAt)
	}
}

func TestComputeTodayStatus_CutoffBoundary(t *testing.T) {
	t.Parallel()
	w := DefaultWindow()

	// 09:59:59 is still pending
	status, _ := w.ComputeTodayStatus(weekdayAt(9, 59, 59), nil, nil, false)
	assert.Equal(t, domain.StatusPending, status)

	// Exactly 10:00:00 is missed
	status, _ = w.ComputeTodayStatus(weekdayAt(10, 0, 0), nil, nil, false)
	assert.Equal(t, domain.StatusMissed, status)
}

func TestComputeTodayStatus_TestModeBypassesGates(t *testing.T) {
	t.Parallel()
	w := DefaultWindow()

	// Weekend gate off
	status, _ := w.ComputeTodayStatus(saturdayAt(9, 0), nil, nil, true)
	assert.Equal(t, domain.StatusPending, status)

	// Cutoff gate off
	status, _ = w.ComputeTodayStatus(weekdayAt(22, 0, 0), nil, nil, true)
	assert.Equal(t, domain.StatusPending, status)

	// An existing submission is still reported
	status, _ = w.ComputeTodayStatus(weekdayAt(22, 0, 0), submissionAt(weekdayAt(9, 0, 0)), nil, true)
	assert.Equal(t, domain.StatusSubmitted, status)
}

func TestCanSubmit(t *testing.T) {
	t.Parallel()
	w := DefaultWindow()

	cases := []struct {
		name     string
		status   domain.TodayStatus
		now      time.Time
		testMode bool
		want     bool
	}{
		{"pending inside window", domain.StatusPending, weekdayAt(8, 30, 0), false, true},
		{"pending at open boundary", domain.StatusPending, weekdayAt(8, 0, 0), false, true},
		{"pending before open", domain.StatusPending, weekdayAt(7, 59, 0), false, false},
		{"pending at cutoff", domain.StatusPending, weekdayAt(10, 0, 0), false, false},
		{"already submitted", domain.StatusSubmitted, weekdayAt(9, 0, 0), false, false},
		{"missed", domain.StatusMissed, weekdayAt(11, 0, 0), false, false},
		{"on leave", domain.StatusOnLeave, weekdayAt(9, 0, 0), false, false},
		{"weekend", domain.StatusWeekend, saturdayAt(9, 0), false, false},
		{"test mode overrides everything", domain.StatusWeekend, saturdayAt(23, 0), true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, w.CanSubmit(c.status, c.now, c.testMode))
		})
	}
}

func TestTimeRemaining(t *testing.T) {
	t.Parallel()
	w := DefaultWindow()

	assert.Equal(t, "1h 30m remaining", w.TimeRemaining(weekdayAt(8, 30, 0), false))
	assert.Equal(t, "0h 1m remaining", w.TimeRemaining(weekdayAt(9, 59, 0), false))
	assert.Equal(t, "", w.TimeRemaining(weekdayAt(10, 0, 0), false))
	assert.Equal(t, "", w.TimeRemaining(weekdayAt(11, 0, 0), false))
	assert.Equal(t, "", w.TimeRemaining(weekdayAt(8, 30, 0), true))
}

func TestParseWindow(t *testing.T) {
	t.Parallel()

	w, err := ParseWindow("08:00", "10:00")
	assert.NoError(t, err)
	assert.Equal(t, DefaultWindow(), w)

	_, err = ParseWindow("8am", "10:00")
	assert.Error(t, err)
}
