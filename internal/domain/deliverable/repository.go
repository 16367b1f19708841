package deliverable

import (
	"context"
)

// DeliverableRepository defines data access methods for campaign deliverables.
type DeliverableRepository interface {
	// Upsert inserts or replaces the deliverable for (user, day-number).
	// The unique constraint on the pair enforces one entry per slot.
	Upsert(ctx context.Context, d Deliverable) (Deliverable, error)

	// GetByUser retrieves all deliverables for a user, ordered by day number
	GetByUser(ctx context.Context, userID string) ([]Deliverable, error)

	// GetAll retrieves every deliverable in the campaign range, joined with
	// user names. Input for the grid report.
	GetAll(ctx context.Context) ([]Deliverable, error)
}
