package deliverable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/standup-backend-go/internal/domain/deliverable"
	"github.com/teampulse/standup-backend-go/internal/domain/department"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
)

func member(id, name string, deptID *string) user.User {
	return user.User{ID: id, Name: name, DepartmentID: deptID, Role: user.RoleMember, IsActive: true}
}

func entries(userID string, days ...int) []deliverable.Deliverable {
	out := make([]deliverable.Deliverable, 0, len(days))
	for _, d := range days {
		out = append(out, deliverable.Deliverable{UserID: userID, DayNumber: d})
	}
	return out
}

func allDays(userID string) []deliverable.Deliverable {
	days := make([]int, 0, deliverable.TotalDays)
	for d := deliverable.DayRangeStart; d <= deliverable.DayRangeEnd; d++ {
		days = append(days, d)
	}
	return entries(userID, days...)
}

func TestBuildGrid_RowCountsAlwaysSumToRange(t *testing.T) {
	deptID := "dept-1"
	members := []user.User{member("u1", "Ana", &deptID)}
	report := BuildGrid(members, entries("u1", 45, 46, 50, 70), nil)

	require.Len(t, report.Users, 1)
	row := report.Users[0]
	assert.Equal(t, 4, row.SubmittedCount)
	assert.Equal(t, 22, row.MissingCount)
	assert.Equal(t, deliverable.TotalDays, row.SubmittedCount+row.MissingCount)
	assert.Len(t, row.Days, deliverable.TotalDays)
	assert.True(t, row.Days[45])
	assert.True(t, row.Days[70])
	assert.False(t, row.Days[47])
}

func TestBuildGrid_ZeroSubmissionMemberIncluded(t *testing.T) {
	deptID := "dept-1"
	members := []user.User{member("u1", "Ana", &deptID)}
	report := BuildGrid(members, nil, nil)

	require.Len(t, report.Users, 1)
	row := report.Users[0]
	assert.Equal(t, 0, row.SubmittedCount)
	assert.Equal(t, deliverable.TotalDays, row.MissingCount)
	assert.Equal(t, 0, row.CompletionRate)
}

func TestBuildGrid_DepartmentRateIsSumOfSums(t *testing.T) {
	deptID := "dept-1"
	members := []user.User{
		member("u1", "Ana", &deptID),
		member("u2", "Ben", &deptID),
	}
	departments := []department.Department{{ID: deptID, Name: "Engineering"}}

	// One member at 100%, one at 0%. Summed counts give 50%, the same as
	// averaging here, but the possible count proves the denominator.
	report := BuildGrid(members, allDays("u1"), departments)

	require.Len(t, report.Departments, 1)
	rollup := report.Departments[0]
	assert.Equal(t, 2, rollup.MemberCount)
	assert.Equal(t, deliverable.TotalDays, rollup.SubmittedCount)
	assert.Equal(t, 2*deliverable.TotalDays, rollup.PossibleCount)
	assert.Equal(t, 50, rollup.CompletionRate)
}

func TestBuildGrid_UnevenMembersNotAveraged(t *testing.T) {
	deptID := "dept-1"
	members := []user.User{
		member("u1", "Ana", &deptID),
		member("u2", "Ben", &deptID),
	}
	departments := []department.Department{{ID: deptID, Name: "Engineering"}}

	// 13 of 26 plus 0 of 26: 13/52 = 25%.
	all := entries("u1", 45, 46, 47, 48, 49, 50, 51, 52, 53, 54, 55, 56, 57)
	report := BuildGrid(members, all, departments)

	require.Len(t, report.Departments, 1)
	assert.Equal(t, 25, report.Departments[0].CompletionRate)
}

func TestBuildGrid_EmptyDepartment(t *testing.T) {
	departments := []department.Department{{ID: "dept-9", Name: "Empty"}}
	report := BuildGrid(nil, nil, departments)

	require.Len(t, report.Departments, 1)
	rollup := report.Departments[0]
	assert.Equal(t, 0, rollup.MemberCount)
	assert.Equal(t, 0, rollup.PossibleCount)
	assert.Equal(t, 0, rollup.CompletionRate)
}

func TestBuildGrid_OutOfRangeEntriesIgnored(t *testing.T) {
	members := []user.User{member("u1", "Ana", nil)}
	report := BuildGrid(members, entries("u1", 44, 71, 45), nil)

	require.Len(t, report.Users, 1)
	assert.Equal(t, 1, report.Users[0].SubmittedCount)
}

func TestBuildGrid_MembersWithoutDepartmentSkipRollup(t *testing.T) {
	deptID := "dept-1"
	members := []user.User{
		member("u1", "Ana", &deptID),
		member("u2", "Ben", nil),
	}
	departments := []department.Department{{ID: deptID, Name: "Engineering"}}

	report := BuildGrid(members, allDays("u2"), departments)

	require.Len(t, report.Users, 2)
	require.Len(t, report.Departments, 1)
	assert.Equal(t, 1, report.Departments[0].MemberCount)
	assert.Equal(t, 0, report.Departments[0].SubmittedCount)
}
