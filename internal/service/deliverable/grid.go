package deliverable

import (
	"math"
	"sort"

	"github.com/teampulse/standup-backend-go/internal/domain/deliverable"
	"github.com/teampulse/standup-backend-go/internal/domain/department"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
)

// BuildGrid assembles the campaign report from the raw member, deliverable
// and department lists. Every active member gets a row, including members
// with zero submissions. Department rates come from summed counts across
// members, never from averaging per-member rates.
func BuildGrid(members []user.User, deliverables []deliverable.Deliverable, departments []department.Department) deliverable.GridReportResponse {
	byUser := make(map[string]map[int]bool, len(members))
	for _, d := range deliverables {
		if d.DayNumber < deliverable.DayRangeStart || d.DayNumber > deliverable.DayRangeEnd {
			continue
		}
		if byUser[d.UserID] == nil {
			byUser[d.UserID] = make(map[int]bool, deliverable.TotalDays)
		}
		byUser[d.UserID][d.DayNumber] = true
	}

	users := make([]deliverable.UserGridRow, 0, len(members))
	type deptTally struct {
		members   int
		submitted int
	}
	tallies := make(map[string]*deptTally)

	for _, m := range members {
		days := make(map[int]bool, deliverable.TotalDays)
		submitted := 0
		for day := deliverable.DayRangeStart; day <= deliverable.DayRangeEnd; day++ {
			has := byUser[m.ID][day]
			days[day] = has
			if has {
				submitted++
			}
		}

		users = append(users, deliverable.UserGridRow{
			UserID:         m.ID,
			UserName:       m.Name,
			DepartmentID:   m.DepartmentID,
			Days:           days,
			SubmittedCount: submitted,
			MissingCount:   deliverable.TotalDays - submitted,
			CompletionRate: ratePercent(submitted, deliverable.TotalDays),
		})

		if m.DepartmentID != nil {
			t := tallies[*m.DepartmentID]
			if t == nil {
				t = &deptTally{}
				tallies[*m.DepartmentID] = t
			}
			t.members++
			t.submitted += submitted
		}
	}

	sort.Slice(users, func(i, j int) bool { return users[i].UserName < users[j].UserName })

	rollups := make([]deliverable.DepartmentRollup, 0, len(departments))
	for _, dept := range departments {
		t := tallies[dept.ID]
		if t == nil {
			t = &deptTally{}
		}
		possible := t.members * deliverable.TotalDays
		rollups = append(rollups, deliverable.DepartmentRollup{
			DepartmentID:   dept.ID,
			DepartmentName: dept.Name,
			MemberCount:    t.members,
			SubmittedCount: t.submitted,
			PossibleCount:  possible,
			CompletionRate: ratePercent(t.submitted, possible),
		})
	}

	sort.Slice(rollups, func(i, j int) bool { return rollups[i].DepartmentName < rollups[j].DepartmentName })

	return deliverable.GridReportResponse{
		DayRangeStart: deliverable.DayRangeStart,
		DayRangeEnd:   deliverable.DayRangeEnd,
		Users:         users,
		Departments:   rollups,
	}
}

func ratePercent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}
