package department

import (
	"github.com/teampulse/standup-backend-go/internal/pkg/validator"
)

// DepartmentResponse represents a department in API responses
type DepartmentResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	ManagerID   *string `json:"manager_id,omitempty"`
	ManagerName *string `json:"manager_name,omitempty"`
	MemberCount int64   `json:"member_count"`
	CreatedAt   string  `json:"created_at"`
}

// CreateDepartmentRequest creates a new department
type CreateDepartmentRequest struct {
	Name      string  `json:"name"`
	ManagerID *string `json:"manager_id,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateDepartmentRequest updates an existing department
type UpdateDepartmentRequest struct {
	Name      *string `json:"name,omitempty"`
	ManagerID *string `json:"manager_id,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToResponse converts a Department entity to its API representation
func (d *Department) ToResponse() DepartmentResponse {
	return DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		ManagerID:   d.ManagerID,
		ManagerName: d.ManagerName,
		MemberCount: d.MemberCount,
		CreatedAt:   d.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
