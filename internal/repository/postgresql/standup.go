package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/standup"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
)

const standupColumns = `id, user_id, department_id, date, submitted_at, yesterday, today,
		blockers, method, media_url, transcript, status, created_at, updated_at`

type standupRepositoryImpl struct {
	db *database.DB
}

func NewStandupRepository(db *database.DB) standup.StandupRepository {
	return &standupRepositoryImpl{db: db}
}

func scanStandup(row pgx.Row) (standup.Standup, error) {
	var s standup.Standup
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.DepartmentID,
		&s.Date,
		&s.SubmittedAt,
		&s.Yesterday,
		&s.Today,
		&s.Blockers,
		&s.Method,
		&s.MediaURL,
		&s.Transcript,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements standup.StandupRepository.
func (r *standupRepositoryImpl) Create(ctx context.Context, record standup.Standup) (standup.Standup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_standups (
			user_id, department_id, date, submitted_at, yesterday, today, blockers,
			method, media_url, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + standupColumns

	created, err := scanStandup(q.QueryRow(ctx, query,
		record.UserID,
		record.DepartmentID,
		record.Date,
		record.SubmittedAt,
		record.Yesterday,
		record.Today,
		record.Blockers,
		record.Method,
		record.MediaURL,
		record.Status,
	))
	if err != nil {
		return standup.Standup{}, err
	}

	return created, nil
}

// GetByID implements standup.StandupRepository.
func (r *standupRepositoryImpl) GetByID(ctx context.Context, id string) (standup.Standup, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + standupColumns + ` FROM daily_standups WHERE id = $1`

	record, err := scanStandup(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return standup.Standup{}, standup.ErrStandupNotFound
		}
		return standup.Standup{}, err
	}

	return record, nil
}

// GetByUserAndDate implements standup.StandupRepository.
func (r *standupRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, dateLocal string) (*standup.Standup, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + standupColumns + ` FROM daily_standups WHERE user_id = $1 AND date = $2`

	record, err := scanStandup(q.QueryRow(ctx, query, userID, dateLocal))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

// GetSubmittedDates implements standup.StandupRepository.
func (r *standupRepositoryImpl) GetSubmittedDates(ctx context.Context, userID string, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date
		FROM daily_standups
		WHERE user_id = $1
			AND status = 'submitted'
			AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}

// GetMyStandups implements standup.StandupRepository.
func (r *standupRepositoryImpl) GetMyStandups(ctx context.Context, userID string, filter standup.MyStandupFilter) ([]standup.Standup, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE user_id = $1
		AND ($2::date IS NULL OR date >= $2)
		AND ($3::date IS NULL OR date <= $3)
		AND ($4::text IS NULL OR status = $4)`
	args := []interface{}{userID, filter.StartDate, filter.EndDate, filter.Status}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM daily_standups `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	query := fmt.Sprintf(`SELECT %s FROM daily_standups %s ORDER BY date DESC LIMIT $5 OFFSET $6`, standupColumns, where)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []standup.Standup
	for rows.Next() {
		record, err := scanStandup(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// List implements standup.StandupRepository.
func (r *standupRepositoryImpl) List(ctx context.Context, filter standup.StandupFilter) ([]standup.Standup, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE ($1::uuid IS NULL OR s.user_id = $1)
		AND ($2::uuid IS NULL OR s.department_id = $2)
		AND ($3::date IS NULL OR s.date = $3)
		AND ($4::date IS NULL OR s.date >= $4)
		AND ($5::date IS NULL OR s.date <= $5)
		AND ($6::text IS NULL OR s.status = $6)`
	args := []interface{}{filter.UserID, filter.DepartmentID, filter.Date, filter.StartDate, filter.EndDate, filter.Status}

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM daily_standups s `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	query := `
		SELECT s.id, s.user_id, s.department_id, s.date, s.submitted_at, s.yesterday, s.today,
			s.blockers, s.method, s.media_url, s.transcript, s.status, s.created_at, s.updated_at,
			u.name AS user_name
		FROM daily_standups s
		JOIN users u ON u.id = s.user_id
		` + where + `
		ORDER BY s.date DESC, u.name
		LIMIT $7 OFFSET $8
	`
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []standup.Standup
	for rows.Next() {
		var s standup.Standup
		err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.DepartmentID,
			&s.Date,
			&s.SubmittedAt,
			&s.Yesterday,
			&s.Today,
			&s.Blockers,
			&s.Method,
			&s.MediaURL,
			&s.Transcript,
			&s.Status,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.UserName,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// SetTranscript implements standup.StandupRepository.
func (r *standupRepositoryImpl) SetTranscript(ctx context.Context, id string, transcript string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE daily_standups
		SET transcript = $1,
			yesterday = CASE WHEN yesterday = '' THEN $1 ELSE yesterday END,
			updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, transcript, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return standup.ErrStandupNotFound
	}
	return nil
}

// MarkMissed implements standup.StandupRepository. Inserts a missed row for
// every active member with no record and no approved leave on dateLocal. The
// unique (user_id, date) constraint makes reruns of the sweep no-ops.
func (r *standupRepositoryImpl) MarkMissed(ctx context.Context, dateLocal string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_standups (user_id, department_id, date, submitted_at, yesterday, today, method, status)
		SELECT u.id, u.department_id, $1::date, NOW(), '', '', 'text', 'missed'
		FROM users u
		WHERE u.role = 'member'
			AND u.is_active = TRUE
			AND NOT EXISTS (
				SELECT 1 FROM daily_standups s
				WHERE s.user_id = u.id AND s.date = $1::date
			)
			AND NOT EXISTS (
				SELECT 1 FROM leave_requests l
				WHERE l.user_id = u.id AND l.date = $1::date AND l.status = 'approved'
			)
		ON CONFLICT (user_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, dateLocal)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
