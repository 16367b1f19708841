package dashboard

import (
	"context"
	"time"

	"github.com/teampulse/standup-backend-go/internal/domain/leave"
	"github.com/teampulse/standup-backend-go/internal/domain/standup"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
)

// DashboardRepository defines the interface for team dashboard data access
type DashboardRepository interface {
	// GetActiveMembers returns the active members of a department
	GetActiveMembers(ctx context.Context, departmentID string) ([]user.User, error)

	// GetTodayStandups returns today's submissions keyed by user ID
	GetTodayStandups(ctx context.Context, departmentID string, dateLocal string) (map[string]standup.Standup, error)

	// GetApprovedLeaves returns approved leaves for the date keyed by user ID
	GetApprovedLeaves(ctx context.Context, departmentID string, dateLocal string) (map[string]leave.LeaveRequest, error)

	// GetSubmittedDates returns per-user submitted dates in [from, to] in a
	// single query. Input for the streak and compliance math across the team.
	GetSubmittedDates(ctx context.Context, departmentID string, from, to time.Time) (map[string][]time.Time, error)
}
