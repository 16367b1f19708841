package deliverable

import "errors"

// Deliverable domain errors
var (
	ErrDayOutOfRange       = errors.New("day number is outside the campaign range")
	ErrDeliverableNotFound = errors.New("deliverable not found")
)
