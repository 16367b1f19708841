package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/leave"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
)

const leaveColumns = `id, user_id, date, reason, status, reviewed_by, reviewed_at, review_note,
		created_at, updated_at`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var l leave.LeaveRequest
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.Date,
		&l.Reason,
		&l.Status,
		&l.ReviewedBy,
		&l.ReviewedAt,
		&l.ReviewNote,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, date, reason, status)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, query, request.UserID, request.Date, request.Reason, request.Status))
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	record, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return record, nil
}

// GetApprovedByUserAndDate implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetApprovedByUserAndDate(ctx context.Context, userID string, dateLocal string) (*leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE user_id = $1 AND date = $2 AND status = 'approved'
	`

	record, err := scanLeave(q.QueryRow(ctx, query, userID, dateLocal))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// ExistsByUserAndDate implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ExistsByUserAndDate(ctx context.Context, userID string, dateLocal string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM leave_requests WHERE user_id = $1 AND date = $2)`,
		userID, dateLocal,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE ($1::uuid IS NULL OR l.user_id = $1)
		AND ($2::text IS NULL OR l.status = $2)
		AND ($3::date IS NULL OR l.date >= $3)
		AND ($4::date IS NULL OR l.date <= $4)`
	args := []interface{}{filter.UserID, filter.Status, filter.StartDate, filter.EndDate}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests l `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	query := `
		SELECT l.id, l.user_id, l.date, l.reason, l.status, l.reviewed_by, l.reviewed_at,
			l.review_note, l.created_at, l.updated_at, u.name AS user_name
		FROM leave_requests l
		JOIN users u ON u.id = l.user_id
		` + where + `
		ORDER BY l.date DESC
		LIMIT $5 OFFSET $6
	`
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []leave.LeaveRequest
	for rows.Next() {
		var l leave.LeaveRequest
		err := rows.Scan(
			&l.ID,
			&l.UserID,
			&l.Date,
			&l.Reason,
			&l.Status,
			&l.ReviewedBy,
			&l.ReviewedAt,
			&l.ReviewNote,
			&l.CreatedAt,
			&l.UpdatedAt,
			&l.UserName,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// UpdateStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus, reviewerID string, note *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, reviewed_by = $2, reviewed_at = NOW(), review_note = $3, updated_at = NOW()
		WHERE id = $4 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, status, reviewerID, note, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestAlreadyProcessed
	}
	return nil
}
