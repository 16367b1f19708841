package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Standup Management
	PermissionStandupViewOwn Permission = "standup.view_own"
	PermissionStandupCreate  Permission = "standup.create"
	PermissionStandupViewAll Permission = "standup.view_all"

	// Leave Management
	PermissionLeaveViewOwn Permission = "leave.view_own"
	PermissionLeaveCreate  Permission = "leave.create"
	PermissionLeaveViewAll Permission = "leave.view_all"
	PermissionLeaveReview  Permission = "leave.review"

	// Deliverable Management
	PermissionDeliverableViewOwn Permission = "deliverable.view_own"
	PermissionDeliverableCreate  Permission = "deliverable.create"
	PermissionDeliverableReport  Permission = "deliverable.report"

	// Reports
	PermissionDashboardView Permission = "dashboard.view"

	// Administration
	PermissionUserManage       Permission = "user.manage"
	PermissionDepartmentManage Permission = "department.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperadmin: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionStandupViewOwn,
		PermissionStandupCreate,
		PermissionStandupViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveReview,
		PermissionDeliverableViewOwn,
		PermissionDeliverableCreate,
		PermissionDeliverableReport,
		PermissionDashboardView,
		PermissionUserManage,
		PermissionDepartmentManage,
	},
	RoleManager: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionStandupViewOwn,
		PermissionStandupCreate,
		PermissionStandupViewAll,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionLeaveViewAll,
		PermissionLeaveReview,
		PermissionDeliverableViewOwn,
		PermissionDeliverableCreate,
		PermissionDeliverableReport,
		PermissionDashboardView,
	},
	RoleMember: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionStandupViewOwn,
		PermissionStandupCreate,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
		PermissionDeliverableViewOwn,
		PermissionDeliverableCreate,
	},
}

// HasPermission checks whether the role grants the permission
func HasPermission(role Role, permission Permission) bool {
	perms, ok := RolePermissions[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if p == permission {
			return true
		}
	}
	return false
}
