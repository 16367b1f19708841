package user

import "time"

type Role string

const (
	RoleSuperadmin Role = "superadmin" // Platform admin - full access
	RoleManager    Role = "manager"    // Can view team compliance, approve leave
	RoleMember     Role = "member"     // Submits daily standups
)

// SubmissionMethod is the member's preferred way of submitting a standup.
type SubmissionMethod string

const (
	MethodText  SubmissionMethod = "text"
	MethodAudio SubmissionMethod = "audio"
	MethodImage SubmissionMethod = "image"
)

type User struct {
	ID              string
	DepartmentID    *string
	Email           string
	Name            string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	PreferredMethod SubmissionMethod
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	DepartmentName *string
}

// IsSuperadmin checks if user is the platform superadmin
func (u *User) IsSuperadmin() bool {
	return u.Role == RoleSuperadmin
}

// IsManager checks if user is manager or superadmin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleSuperadmin
}

// CanReview checks if user can approve leave requests
func (u *User) CanReview() bool {
	return u.IsManager()
}
