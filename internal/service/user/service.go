package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/department"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
	"github.com/teampulse/standup-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
	department.DepartmentRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository, departmentRepo department.DepartmentRepository) user.UserService {
	return &UserServiceImpl{
		db:                   db,
		UserRepository:       userRepo,
		DepartmentRepository: departmentRepo,
	}
}

func callerID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrEmailExists
	}

	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return user.UserResponse{}, err
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hashed)

	created, err := s.UserRepository.Create(ctx, user.User{
		DepartmentID:    req.DepartmentID,
		Email:           req.Email,
		Name:            req.Name,
		PasswordHash:    &passwordHash,
		Role:            user.Role(req.Role),
		PreferredMethod: user.MethodText,
		IsActive:        true,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return created.ToResponse(), nil
}

// GetMe implements user.UserService.
func (s *UserServiceImpl) GetMe(ctx context.Context) (user.UserResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	return s.GetByID(ctx, userID)
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	account, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	return account.ToResponse(), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil && *req.Email != existing.Email {
		exists, err := s.UserRepository.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			return user.UserResponse{}, user.ErrEmailExists
		}
	}

	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return user.UserResponse{}, err
		}
	}

	var passwordHash *string
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		hashedStr := string(hashed)
		passwordHash = &hashedStr
		req.Password = nil
	}

	// Password and profile fields commit together
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if passwordHash != nil {
			if err := s.UserRepository.UpdatePassword(txCtx, req.ID, *passwordHash); err != nil {
				return fmt.Errorf("failed to update password: %w", err)
			}
		}
		return s.UserRepository.Update(txCtx, req)
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	updated, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	return updated.ToResponse(), nil
}

// UpdateMyPreference implements user.UserService.
func (s *UserServiceImpl) UpdateMyPreference(ctx context.Context, req user.UpdatePreferenceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := callerID(ctx)
	if err != nil {
		return err
	}

	if err := s.UserRepository.UpdatePreferredMethod(ctx, userID, user.SubmissionMethod(req.PreferredMethod)); err != nil {
		return fmt.Errorf("failed to update preferred method: %w", err)
	}

	return nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, departmentID *string, page, limit int) ([]user.UserResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	accounts, total, err := s.UserRepository.List(ctx, departmentID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, accounts[i].ToResponse())
	}

	return responses, total, nil
}

// Deactivate implements user.UserService.
func (s *UserServiceImpl) Deactivate(ctx context.Context, id string) error {
	account, err := s.UserRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if account.IsSuperadmin() {
		return user.ErrCannotDeactivateSuperadmin
	}

	if err := s.UserRepository.Deactivate(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	return nil
}
