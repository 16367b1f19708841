package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
)

const userColumns = `id, department_id, email, name, password_hash, role, oauth_provider,
		oauth_provider_id, preferred_method, is_active, created_at, updated_at`

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.DepartmentID,
		&u.Email,
		&u.Name,
		&u.PasswordHash,
		&u.Role,
		&u.OAuthProvider,
		&u.OAuthProviderID,
		&u.PreferredMethod,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	return scanUser(q.QueryRow(ctx, query, email))
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	return scanUser(q.QueryRow(ctx, query, id))
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			department_id, email, name, password_hash, role, preferred_method, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query,
		newUser.DepartmentID,
		newUser.Email,
		newUser.Name,
		newUser.PasswordHash,
		newUser.Role,
		newUser.PreferredMethod,
		newUser.IsActive,
	))
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// LinkGoogleAccount implements user.UserRepository.
func (r *userRepositoryImpl) LinkGoogleAccount(ctx context.Context, googleID string, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET oauth_provider = $1, oauth_provider_id = $2, updated_at = NOW()
		WHERE email = $3
		RETURNING ` + userColumns

	return scanUser(q.QueryRow(ctx, query, "google", googleID, email))
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = COALESCE($1, email),
			name = COALESCE($2, name),
			role = COALESCE($3, role),
			department_id = COALESCE($4, department_id),
			is_active = COALESCE($5, is_active),
			updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query, req.Email, req.Name, req.Role, req.DepartmentID, req.IsActive, req.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, passwordHash, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// UpdatePreferredMethod implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePreferredMethod(ctx context.Context, userID string, method user.SubmissionMethod) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET preferred_method = $1, updated_at = NOW() WHERE id = $2`, method, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, departmentID *string, page, limit int) ([]user.User, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `SELECT COUNT(*) FROM users WHERE ($1::uuid IS NULL OR department_id = $1)`

	var total int64
	if err := q.QueryRow(ctx, countQuery, departmentID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT u.id, u.department_id, u.email, u.name, u.password_hash, u.role, u.oauth_provider,
			u.oauth_provider_id, u.preferred_method, u.is_active, u.created_at, u.updated_at,
			d.name AS department_name
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE ($1::uuid IS NULL OR u.department_id = $1)
		ORDER BY u.name
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, departmentID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID,
			&u.DepartmentID,
			&u.Email,
			&u.Name,
			&u.PasswordHash,
			&u.Role,
			&u.OAuthProvider,
			&u.OAuthProviderID,
			&u.PreferredMethod,
			&u.IsActive,
			&u.CreatedAt,
			&u.UpdatedAt,
			&u.DepartmentName,
		)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListActiveMembers implements user.UserRepository.
func (r *userRepositoryImpl) ListActiveMembers(ctx context.Context, departmentID *string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE role = 'member'
			AND is_active = TRUE
			AND ($1::uuid IS NULL OR department_id = $1)
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Deactivate implements user.UserRepository.
func (r *userRepositoryImpl) Deactivate(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
