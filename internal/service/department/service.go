package department

import (
	"context"
	"fmt"

	"github.com/teampulse/standup-backend-go/internal/domain/department"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
)

type DepartmentServiceImpl struct {
	db *database.DB
	department.DepartmentRepository
	user.UserRepository
}

func NewDepartmentService(db *database.DB, departmentRepo department.DepartmentRepository, userRepo user.UserRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		db:                   db,
		DepartmentRepository: departmentRepo,
		UserRepository:       userRepo,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.ManagerID != nil {
		if _, err := s.UserRepository.GetByID(ctx, *req.ManagerID); err != nil {
			return department.DepartmentResponse{}, err
		}
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Name:      req.Name,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return created.ToResponse(), nil
}

// GetByID implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return dept.ToResponse(), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, departments[i].ToResponse())
	}

	return responses, nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if _, err := s.DepartmentRepository.GetByID(ctx, id); err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.ManagerID != nil {
		if _, err := s.UserRepository.GetByID(ctx, *req.ManagerID); err != nil {
			return department.DepartmentResponse{}, err
		}
	}

	if err := s.DepartmentRepository.Update(ctx, id, req); err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}

	updated, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return updated.ToResponse(), nil
}

// Delete implements department.DepartmentService.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dept.MemberCount > 0 {
		return department.ErrDepartmentNotEmpty
	}

	return s.DepartmentRepository.Delete(ctx, id)
}
