package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/dashboard"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
	"github.com/teampulse/standup-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetTeamDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetTeamDashboard implements DashboardHandler. Managers are locked to their
// own department; superadmins may target any via the department_id parameter.
func (h *DashboardHandlerImpl) GetTeamDashboard(w http.ResponseWriter, r *http.Request) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	role, _ := claims["role"].(string)
	ownDepartmentID, _ := claims["department_id"].(string)
	requested := r.URL.Query().Get("department_id")

	departmentID := ownDepartmentID
	if role == string(user.RoleSuperadmin) && requested != "" {
		departmentID = requested
	} else if requested != "" && requested != ownDepartmentID {
		response.HandleError(w, user.ErrManagerAccessRequired)
		return
	}

	if departmentID == "" {
		response.BadRequest(w, "department_id is required", nil)
		return
	}

	result, err := h.dashboardService.GetTeamDashboard(r.Context(), departmentID)
	if err != nil {
		slog.Error("GetTeamDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
