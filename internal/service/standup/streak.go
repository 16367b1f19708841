package standup

import (
	"math"
	"time"
)

// MaxStreakLookbackDays bounds the streak walk so sparse data can never
// produce an unbounded scan.
const MaxStreakLookbackDays = 60

const dayFormat = "2006-01-02"

// DateSet is a day-granularity set of submitted dates.
type DateSet map[string]struct{}

// NewDateSet builds a DateSet from submission dates.
func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d.Format(dayFormat)] = struct{}{}
	}
	return s
}

// Contains reports whether the set holds the day of t.
func (s DateSet) Contains(t time.Time) bool {
	_, ok := s[t.Format(dayFormat)]
	return ok
}

// ComputeStreak counts consecutive submitted weekdays ending at or
// immediately before asOf. An unsubmitted weekday asOf does not break the
// streak; the walk starts from the previous day instead. Weekends neither
// break nor extend a streak.
func ComputeStreak(submitted DateSet, asOf time.Time) int {
	if len(submitted) == 0 {
		return 0
	}

	cursor := asOf
	if !isWeekend(cursor) && !submitted.Contains(cursor) {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for steps := 0; steps < MaxStreakLookbackDays; steps++ {
		if isWeekend(cursor) {
			cursor = cursor.AddDate(0, 0, -1)
			continue
		}
		if !submitted.Contains(cursor) {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak
}

// ComplianceRate computes the rounded percentage of weekdays in the
// inclusive trailing window [asOf-windowDays, asOf] that have a submission.
// A window with no weekdays yields 0 rather than dividing by zero.
func ComplianceRate(submitted DateSet, windowDays int, asOf time.Time) int {
	if windowDays <= 0 {
		return 0
	}

	weekdays := 0
	matched := 0
	for d := asOf.AddDate(0, 0, -windowDays); !d.After(asOf); d = d.AddDate(0, 0, 1) {
		if isWeekend(d) {
			continue
		}
		weekdays++
		if submitted.Contains(d) {
			matched++
		}
	}

	if weekdays == 0 {
		return 0
	}
	return int(math.Round(100 * float64(matched) / float64(weekdays)))
}
