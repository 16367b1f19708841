package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetTeamDashboard returns the compliance dashboard for the caller's team.
	// Superadmins may target any department via departmentID; managers are
	// locked to their own.
	GetTeamDashboard(ctx context.Context, departmentID string) (*TeamDashboardResponse, error)
}
