package dashboard

// ========== TEAM COMPLIANCE DASHBOARD ==========

// MemberComplianceResponse is one member's row on the manager dashboard
type MemberComplianceResponse struct {
	UserID            string  `json:"user_id"`
	Name              string  `json:"name"`
	TodayStatus       string  `json:"today_status"`
	SubmittedAt       *string `json:"submitted_at,omitempty"` // Format: "HH:MM"
	CurrentStreak     int     `json:"current_streak"`
	WeeklyCompliance  int     `json:"weekly_compliance"`
	MonthlyCompliance int     `json:"monthly_compliance"`
}

// TeamDashboardResponse is the combined response for the team dashboard endpoint
type TeamDashboardResponse struct {
	DepartmentID   string                     `json:"department_id"`
	DepartmentName string                     `json:"department_name"`
	Date           string                     `json:"date"` // Format: "YYYY-MM-DD"
	Members        []MemberComplianceResponse `json:"members"`
	TodaySummary   TodaySummaryResponse       `json:"today_summary"`

	// Team rate over the trailing week: summed member submissions over summed
	// member weekday slots, not an average of member percentages.
	TeamWeeklyCompliance int `json:"team_weekly_compliance"`
}

// TodaySummaryResponse counts members by today-status for the pie chart
type TodaySummaryResponse struct {
	Submitted int `json:"submitted"`
	Pending   int `json:"pending"`
	Missed    int `json:"missed"`
	OnLeave   int `json:"on_leave"`
	Total     int `json:"total"`
}
