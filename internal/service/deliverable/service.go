package deliverable

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/deliverable"
	"github.com/teampulse/standup-backend-go/internal/domain/department"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
	"golang.org/x/sync/errgroup"
)

type DeliverableServiceImpl struct {
	db *database.DB
	deliverable.DeliverableRepository
	user.UserRepository
	department.DepartmentRepository
}

func NewDeliverableService(
	db *database.DB,
	deliverableRepo deliverable.DeliverableRepository,
	userRepo user.UserRepository,
	departmentRepo department.DepartmentRepository,
) deliverable.DeliverableService {
	return &DeliverableServiceImpl{
		db:                    db,
		DeliverableRepository: deliverableRepo,
		UserRepository:        userRepo,
		DepartmentRepository:  departmentRepo,
	}
}

func callerID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}

	return userID, nil
}

// Upsert implements deliverable.DeliverableService.
func (s *DeliverableServiceImpl) Upsert(ctx context.Context, req deliverable.UpsertDeliverableRequest) (deliverable.DeliverableResponse, error) {
	if err := req.Validate(); err != nil {
		return deliverable.DeliverableResponse{}, err
	}

	userID, err := callerID(ctx)
	if err != nil {
		return deliverable.DeliverableResponse{}, err
	}

	saved, err := s.DeliverableRepository.Upsert(ctx, deliverable.Deliverable{
		UserID:       userID,
		DayNumber:    req.DayNumber,
		DriveLink:    req.DriveLink,
		LinkedinLink: req.LinkedinLink,
		Notes:        req.Notes,
	})
	if err != nil {
		return deliverable.DeliverableResponse{}, fmt.Errorf("failed to upsert deliverable: %w", err)
	}

	return toResponse(saved), nil
}

// GetMyDeliverables implements deliverable.DeliverableService.
func (s *DeliverableServiceImpl) GetMyDeliverables(ctx context.Context) ([]deliverable.DeliverableResponse, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.DeliverableRepository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliverables: %w", err)
	}

	responses := make([]deliverable.DeliverableResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}

	return responses, nil
}

// GetReport implements deliverable.DeliverableService.
func (s *DeliverableServiceImpl) GetReport(ctx context.Context) (deliverable.GridReportResponse, error) {
	var (
		members     []user.User
		records     []deliverable.Deliverable
		departments []department.Department
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		members, err = s.UserRepository.ListActiveMembers(gCtx, nil)
		if err != nil {
			return fmt.Errorf("failed to list active members: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		records, err = s.DeliverableRepository.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to get deliverables: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		departments, err = s.DepartmentRepository.List(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list departments: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return deliverable.GridReportResponse{}, err
	}

	return BuildGrid(members, records, departments), nil
}

func toResponse(record deliverable.Deliverable) deliverable.DeliverableResponse {
	return deliverable.DeliverableResponse{
		ID:           record.ID,
		UserID:       record.UserID,
		DayNumber:    record.DayNumber,
		DriveLink:    record.DriveLink,
		LinkedinLink: record.LinkedinLink,
		Notes:        record.Notes,
		CreatedAt:    record.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
