package postgresql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/teampulse/standup-backend-go/internal/domain/department"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (name, manager_id)
		VALUES ($1, $2)
		RETURNING id, name, manager_id, created_at, updated_at
	`

	var created department.Department
	err := q.QueryRow(ctx, query, dept.Name, dept.ManagerID).Scan(
		&created.ID,
		&created.Name,
		&created.ManagerID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return department.Department{}, department.ErrNameExists
		}
		return department.Department{}, err
	}

	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.manager_id, d.created_at, d.updated_at,
			m.name AS manager_name,
			(SELECT COUNT(*) FROM users u WHERE u.department_id = d.id AND u.is_active = TRUE) AS member_count
		FROM departments d
		LEFT JOIN users m ON m.id = d.manager_id
		WHERE d.id = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID,
		&dept.Name,
		&dept.ManagerID,
		&dept.CreatedAt,
		&dept.UpdatedAt,
		&dept.ManagerName,
		&dept.MemberCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}

	return dept, nil
}

// GetByManagerID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByManagerID(ctx context.Context, managerID string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, manager_id, created_at, updated_at FROM departments WHERE manager_id = $1`

	var dept department.Department
	err := q.QueryRow(ctx, query, managerID).Scan(
		&dept.ID,
		&dept.Name,
		&dept.ManagerID,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}

	return dept, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.manager_id, d.created_at, d.updated_at,
			m.name AS manager_name,
			(SELECT COUNT(*) FROM users u WHERE u.department_id = d.id AND u.is_active = TRUE) AS member_count
		FROM departments d
		LEFT JOIN users m ON m.id = d.manager_id
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		err := rows.Scan(
			&dept.ID,
			&dept.Name,
			&dept.ManagerID,
			&dept.CreatedAt,
			&dept.UpdatedAt,
			&dept.ManagerName,
			&dept.MemberCount,
		)
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = COALESCE($1, name),
			manager_id = COALESCE($2, manager_id),
			updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, req.Name, req.ManagerID, id)
	if err != nil {
		if isUniqueViolation(err) {
			return department.ErrNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "duplicate key")
}
