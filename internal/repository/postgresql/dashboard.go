package postgresql

import (
	"context"
	"time"

	"github.com/teampulse/standup-backend-go/internal/domain/dashboard"
	"github.com/teampulse/standup-backend-go/internal/domain/leave"
	"github.com/teampulse/standup-backend-go/internal/domain/standup"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetActiveMembers implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetActiveMembers(ctx context.Context, departmentID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, email, name, preferred_method, role, is_active
		FROM users
		WHERE department_id = $1 AND role = 'member' AND is_active = TRUE
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.DepartmentID, &u.Email, &u.Name, &u.PreferredMethod, &u.Role, &u.IsActive); err != nil {
			return nil, err
		}
		members = append(members, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// GetTodayStandups implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetTodayStandups(ctx context.Context, departmentID string, dateLocal string) (map[string]standup.Standup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + standupColumns + `
		FROM daily_standups
		WHERE department_id = $1 AND date = $2
	`

	rows, err := q.Query(ctx, query, departmentID, dateLocal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]standup.Standup)
	for rows.Next() {
		s, err := scanStandup(rows)
		if err != nil {
			return nil, err
		}
		result[s.UserID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetApprovedLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetApprovedLeaves(ctx context.Context, departmentID string, dateLocal string) (map[string]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.user_id, l.date, l.reason, l.status, l.reviewed_by, l.reviewed_at,
			l.review_note, l.created_at, l.updated_at
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		WHERE u.department_id = $1 AND l.date = $2 AND l.status = 'approved'
	`

	rows, err := q.Query(ctx, query, departmentID, dateLocal)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]leave.LeaveRequest)
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		result[l.UserID] = l
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetSubmittedDates implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetSubmittedDates(ctx context.Context, departmentID string, from, to time.Time) (map[string][]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, date
		FROM daily_standups
		WHERE department_id = $1
			AND status = 'submitted'
			AND date BETWEEN $2 AND $3
		ORDER BY user_id, date
	`

	rows, err := q.Query(ctx, query, departmentID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]time.Time)
	for rows.Next() {
		var userID string
		var date time.Time
		if err := rows.Scan(&userID, &date); err != nil {
			return nil, err
		}
		result[userID] = append(result[userID], date)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
