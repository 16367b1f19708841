package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/teampulse/standup-backend-go/internal/domain/dashboard"
	"github.com/teampulse/standup-backend-go/internal/domain/department"
	"github.com/teampulse/standup-backend-go/internal/domain/leave"
	domstandup "github.com/teampulse/standup-backend-go/internal/domain/standup"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
	standupsvc "github.com/teampulse/standup-backend-go/internal/service/standup"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	db *database.DB
	dashboard.DashboardRepository
	department.DepartmentRepository
	window   standupsvc.Window
	location *time.Location
}

func NewDashboardService(
	db *database.DB,
	dashboardRepo dashboard.DashboardRepository,
	departmentRepo department.DepartmentRepository,
	window standupsvc.Window,
	location *time.Location,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		db:                   db,
		DashboardRepository:  dashboardRepo,
		DepartmentRepository: departmentRepo,
		window:               window,
		location:             location,
	}
}

// GetTeamDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetTeamDashboard(ctx context.Context, departmentID string) (*dashboard.TeamDashboardResponse, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	nowLocal := time.Now().In(s.location)
	dateLocal := nowLocal.Format("2006-01-02")
	asOf := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)
	from := asOf.AddDate(0, 0, -standupsvc.MaxStreakLookbackDays)

	var (
		members        []user.User
		todayStandups  map[string]domstandup.Standup
		approvedLeaves map[string]leave.LeaveRequest
		submittedDates map[string][]time.Time
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		members, err = s.DashboardRepository.GetActiveMembers(gCtx, departmentID)
		if err != nil {
			return fmt.Errorf("failed to get active members: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		todayStandups, err = s.DashboardRepository.GetTodayStandups(gCtx, departmentID, dateLocal)
		if err != nil {
			return fmt.Errorf("failed to get today's standups: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		approvedLeaves, err = s.DashboardRepository.GetApprovedLeaves(gCtx, departmentID, dateLocal)
		if err != nil {
			return fmt.Errorf("failed to get approved leaves: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		submittedDates, err = s.DashboardRepository.GetSubmittedDates(gCtx, departmentID, from, asOf)
		if err != nil {
			return fmt.Errorf("failed to get submitted dates: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	weekdays := trailingWeekdays(asOf, 7)

	var summary dashboard.TodaySummaryResponse
	var weeklySubmitted, weeklyPossible int
	rows := make([]dashboard.MemberComplianceResponse, 0, len(members))

	for _, m := range members {
		var sub *domstandup.Standup
		if rec, ok := todayStandups[m.ID]; ok && rec.Status == "submitted" {
			subCopy := rec
			sub = &subCopy
		}
		var approvedLeave *leave.LeaveRequest
		if rec, ok := approvedLeaves[m.ID]; ok {
			leaveCopy := rec
			approvedLeave = &leaveCopy
		}

		status, submittedAt := s.window.ComputeTodayStatus(nowLocal, sub, approvedLeave, false)
		tallySummary(&summary, status)

		var submittedAtStr *string
		if submittedAt != nil {
			formatted := submittedAt.In(s.location).Format("15:04")
			submittedAtStr = &formatted
		}

		dates := standupsvc.NewDateSet(submittedDates[m.ID]...)

		for _, d := range weekdays {
			if dates.Contains(d) {
				weeklySubmitted++
			}
		}
		weeklyPossible += len(weekdays)

		rows = append(rows, dashboard.MemberComplianceResponse{
			UserID:            m.ID,
			Name:              m.Name,
			TodayStatus:       string(status),
			SubmittedAt:       submittedAtStr,
			CurrentStreak:     standupsvc.ComputeStreak(dates, asOf),
			WeeklyCompliance:  standupsvc.ComplianceRate(dates, 7, asOf),
			MonthlyCompliance: standupsvc.ComplianceRate(dates, 30, asOf),
		})
	}
	summary.Total = len(members)

	teamRate := 0
	if weeklyPossible > 0 {
		teamRate = int(math.Round(float64(weeklySubmitted) / float64(weeklyPossible) * 100))
	}

	return &dashboard.TeamDashboardResponse{
		DepartmentID:         dept.ID,
		DepartmentName:       dept.Name,
		Date:                 dateLocal,
		Members:              rows,
		TodaySummary:         summary,
		TeamWeeklyCompliance: teamRate,
	}, nil
}

func tallySummary(summary *dashboard.TodaySummaryResponse, status domstandup.TodayStatus) {
	switch status {
	case domstandup.StatusSubmitted:
		summary.Submitted++
	case domstandup.StatusPending:
		summary.Pending++
	case domstandup.StatusMissed:
		summary.Missed++
	case domstandup.StatusOnLeave:
		summary.OnLeave++
	}
}

// trailingWeekdays lists the weekdays in the inclusive windowDays-long range
// ending at asOf.
func trailingWeekdays(asOf time.Time, windowDays int) []time.Time {
	var out []time.Time
	for i := windowDays; i >= 0; i-- {
		d := asOf.AddDate(0, 0, -i)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			out = append(out, d)
		}
	}
	return out
}
