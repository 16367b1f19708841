package user

import (
	"github.com/teampulse/standup-backend-go/internal/pkg/validator"
)

// UserResponse represents user data in API responses
type UserResponse struct {
	ID              string  `json:"id"`
	DepartmentID    *string `json:"department_id,omitempty"`
	DepartmentName  *string `json:"department_name,omitempty"`
	Email           string  `json:"email"`
	Name            string  `json:"name"`
	Role            string  `json:"role"`
	OAuthProvider   *string `json:"oauth_provider,omitempty"`
	PreferredMethod string  `json:"preferred_method"`
	IsActive        bool    `json:"is_active"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// CreateUserRequest represents a superadmin request to create a new user
type CreateUserRequest struct {
	DepartmentID *string `json:"department_id,omitempty"`
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Password     string  `json:"password"`
	Role         string  `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else {
		validRoles := []string{string(RoleSuperadmin), string(RoleManager), string(RoleMember)}
		if !validator.IsInSlice(r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateUserRequest represents a superadmin request to update a user
type UpdateUserRequest struct {
	ID           string  `json:"id"`
	Email        *string `json:"email,omitempty"`
	Name         *string `json:"name,omitempty"`
	Password     *string `json:"password,omitempty"`
	Role         *string `json:"role,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Email != nil {
		if validator.IsEmpty(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must not be empty",
			})
		} else if !validator.IsValidEmail(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "invalid email format",
			})
		}
	}

	if r.Password != nil {
		if len(*r.Password) < 8 {
			errs = append(errs, validator.ValidationError{
				Field:   "password",
				Message: "password must be at least 8 characters",
			})
		}
	}

	if r.Role != nil {
		validRoles := []string{string(RoleSuperadmin), string(RoleManager), string(RoleMember)}
		if !validator.IsInSlice(*r.Role, validRoles) {
			errs = append(errs, validator.ValidationError{
				Field:   "role",
				Message: "invalid role",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePreferenceRequest updates the caller's own submission preference
type UpdatePreferenceRequest struct {
	PreferredMethod string `json:"preferred_method"`
}

func (r *UpdatePreferenceRequest) Validate() error {
	var errs validator.ValidationErrors

	validMethods := []string{string(MethodText), string(MethodAudio), string(MethodImage)}
	if !validator.IsInSlice(r.PreferredMethod, validMethods) {
		errs = append(errs, validator.ValidationError{
			Field:   "preferred_method",
			Message: "must be one of text, audio, image",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse converts a User entity to its API representation
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:              u.ID,
		DepartmentID:    u.DepartmentID,
		DepartmentName:  u.DepartmentName,
		Email:           u.Email,
		Name:            u.Name,
		Role:            string(u.Role),
		OAuthProvider:   u.OAuthProvider,
		PreferredMethod: string(u.PreferredMethod),
		IsActive:        u.IsActive,
		CreatedAt:       u.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:       u.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
