package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/deliverable"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
)

const deliverableColumns = `id, user_id, day_number, drive_link, linkedin_link, notes, created_at`

type deliverableRepositoryImpl struct {
	db *database.DB
}

func NewDeliverableRepository(db *database.DB) deliverable.DeliverableRepository {
	return &deliverableRepositoryImpl{db: db}
}

func scanDeliverable(row pgx.Row) (deliverable.Deliverable, error) {
	var d deliverable.Deliverable
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.DayNumber,
		&d.DriveLink,
		&d.LinkedinLink,
		&d.Notes,
		&d.CreatedAt,
	)
	return d, err
}

// Upsert implements deliverable.DeliverableRepository.
func (r *deliverableRepositoryImpl) Upsert(ctx context.Context, d deliverable.Deliverable) (deliverable.Deliverable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deliverables (user_id, day_number, drive_link, linkedin_link, notes)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, day_number)
		DO UPDATE SET drive_link = EXCLUDED.drive_link,
			linkedin_link = EXCLUDED.linkedin_link,
			notes = EXCLUDED.notes
		RETURNING ` + deliverableColumns

	saved, err := scanDeliverable(q.QueryRow(ctx, query, d.UserID, d.DayNumber, d.DriveLink, d.LinkedinLink, d.Notes))
	if err != nil {
		return deliverable.Deliverable{}, err
	}

	return saved, nil
}

// GetByUser implements deliverable.DeliverableRepository.
func (r *deliverableRepositoryImpl) GetByUser(ctx context.Context, userID string) ([]deliverable.Deliverable, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deliverableColumns + ` FROM deliverables WHERE user_id = $1 ORDER BY day_number`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []deliverable.Deliverable
	for rows.Next() {
		d, err := scanDeliverable(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetAll implements deliverable.DeliverableRepository.
func (r *deliverableRepositoryImpl) GetAll(ctx context.Context) ([]deliverable.Deliverable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.user_id, d.day_number, d.drive_link, d.linkedin_link, d.notes, d.created_at,
			u.name AS user_name
		FROM deliverables d
		JOIN users u ON u.id = d.user_id
		ORDER BY u.name, d.day_number
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []deliverable.Deliverable
	for rows.Next() {
		var d deliverable.Deliverable
		err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.DayNumber,
			&d.DriveLink,
			&d.LinkedinLink,
			&d.Notes,
			&d.CreatedAt,
			&d.UserName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
