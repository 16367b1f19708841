package standup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Fixtures: the week of 2026-02-09 (Monday) through 2026-02-13 (Friday).
func day(d int) time.Time {
	return time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeStreak_EmptySet(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, ComputeStreak(NewDateSet(), day(12)))
}

func TestComputeStreak_TodayNotYetSubmitted(t *testing.T) {
	t.Parallel()

	// Mon, Tue, Wed submitted; asOf Thursday with no Thursday submission.
	// The unelapsed day must not break the streak.
	submitted := NewDateSet(day(9), day(10), day(11))
	assert.Equal(t, 3, ComputeStreak(submitted, day(12)))
}

func TestComputeStreak_TodaySubmittedCounts(t *testing.T) {
	t.Parallel()

	submitted := NewDateSet(day(9), day(10), day(11), day(12))
	assert.Equal(t, 4, ComputeStreak(submitted, day(12)))
}

func TestComputeStreak_WeekendSkipped(t *testing.T) {
	t.Parallel()

	// Friday 2026-02-13 submitted only.
	submitted := NewDateSet(day(13))

	// As of that Friday: streak 1.
	assert.Equal(t, 1, ComputeStreak(submitted, day(13)))

	// As of the following Monday (2026-02-16), Monday unsubmitted: walk steps
	// to Sunday, skips the weekend, finds Friday, stops at Thursday. Streak 1.
	assert.Equal(t, 1, ComputeStreak(submitted, day(16)))
}

func TestComputeStreak_WeekendGapDoesNotExtend(t *testing.T) {
	t.Parallel()

	// Thursday and Friday submitted, Monday submitted: weekend between them
	// neither breaks nor counts.
	submitted := NewDateSet(day(12), day(13), day(16))
	assert.Equal(t, 3, ComputeStreak(submitted, day(16)))
}

func TestComputeStreak_BrokenByMissedWeekday(t *testing.T) {
	t.Parallel()

	// Tuesday missed: only Wed+Thu count as of Thursday.
	submitted := NewDateSet(day(9), day(11), day(12))
	assert.Equal(t, 2, ComputeStreak(submitted, day(12)))
}

func TestComputeStreak_AsOfWeekend(t *testing.T) {
	t.Parallel()

	// As of Saturday the walk starts on the weekend and skips back to Friday.
	submitted := NewDateSet(day(12), day(13))
	assert.Equal(t, 2, ComputeStreak(submitted, day(14)))
}

func TestComputeStreak_LookbackBound(t *testing.T) {
	t.Parallel()

	// A single submission far older than the lookback bound must not count.
	old := day(12).AddDate(0, 0, -MaxStreakLookbackDays-10)
	submitted := NewDateSet(old)
	assert.Equal(t, 0, ComputeStreak(submitted, day(12)))
}

func TestComplianceRate_FullWeek(t *testing.T) {
	t.Parallel()

	// Window [Fri 2026-02-06, Fri 2026-02-13]: weekdays Fri 6, Mon 9..Fri 13.
	submitted := NewDateSet(day(6), day(9), day(10), day(11), day(12), day(13))
	assert.Equal(t, 100, ComplianceRate(submitted, 7, day(13)))
}

func TestComplianceRate_Partial(t *testing.T) {
	t.Parallel()

	// 3 of 6 weekdays in the window.
	submitted := NewDateSet(day(9), day(10), day(11))
	assert.Equal(t, 50, ComplianceRate(submitted, 7, day(13)))
}

func TestComplianceRate_Rounded(t *testing.T) {
	t.Parallel()

	// 4 of 6 weekdays = 66.67, rounds to 67.
	submitted := NewDateSet(day(9), day(10), day(11), day(12))
	assert.Equal(t, 67, ComplianceRate(submitted, 7, day(13)))
}

func TestComplianceRate_ZeroWindow(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, ComplianceRate(NewDateSet(day(12)), 0, day(12)))
}

func TestComplianceRate_WeekendsExcludedFromDenominator(t *testing.T) {
	t.Parallel()

	// Window [Thu 2026-02-12, Sat 2026-02-14]: weekdays Thu+Fri only.
	submitted := NewDateSet(day(12), day(13))
	assert.Equal(t, 100, ComplianceRate(submitted, 2, day(14)))
}
