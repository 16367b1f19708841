package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdatePreferredMethod(ctx context.Context, userID string, method SubmissionMethod) error
	List(ctx context.Context, departmentID *string, page, limit int) ([]User, int64, error)
	ListActiveMembers(ctx context.Context, departmentID *string) ([]User, error)
	Deactivate(ctx context.Context, userID string) error
}
