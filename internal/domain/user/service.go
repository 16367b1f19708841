package user

import (
	"context"
)

type UserService interface {
	// Create provisions a new account (superadmin only)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// GetMe returns the caller's own profile
	GetMe(ctx context.Context) (UserResponse, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (UserResponse, error)

	// Update modifies an account (superadmin only)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// UpdateMyPreference sets the caller's preferred submission method
	UpdateMyPreference(ctx context.Context, req UpdatePreferenceRequest) error

	// List lists accounts with optional department filter
	List(ctx context.Context, departmentID *string, page, limit int) ([]UserResponse, int64, error)

	// Deactivate soft-deletes an account (superadmin only)
	Deactivate(ctx context.Context, id string) error
}
