package deliverable

import (
	"context"
)

type DeliverableService interface {
	// Upsert records the caller's deliverable for a day slot
	Upsert(ctx context.Context, req UpsertDeliverableRequest) (DeliverableResponse, error)

	// GetMyDeliverables lists the caller's campaign entries
	GetMyDeliverables(ctx context.Context) ([]DeliverableResponse, error)

	// GetReport builds the full campaign grid with department rollups
	GetReport(ctx context.Context) (GridReportResponse, error)
}
