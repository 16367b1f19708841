package department

import (
	"context"
)

type DepartmentService interface {
	// Create creates a department (superadmin only)
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)

	// GetByID retrieves a department with its manager and member count
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)

	// List lists all departments
	List(ctx context.Context) ([]DepartmentResponse, error)

	// Update modifies a department's name or manager (superadmin only)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)

	// Delete removes an empty department (superadmin only)
	Delete(ctx context.Context, id string) error
}
