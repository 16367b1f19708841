package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/leave"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
	"github.com/teampulse/standup-backend-go/internal/pkg/sse"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	hub      *sse.Hub
	location *time.Location
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRepository,
	hub *sse.Hub,
	location *time.Location,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepo,
		hub:             hub,
		location:        location,
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

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	userID, err := callerID(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("invalid date format: %w", err)
	}

	today := time.Now().In(s.location)
	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(todayDate) {
		return leave.LeaveResponse{}, leave.ErrLeaveDateInPast
	}

	exists, err := s.LeaveRepository.ExistsByUserAndDate(ctx, userID, req.Date)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check existing leave request: %w", err)
	}
	if exists {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestExists
	}

	created, err := s.LeaveRepository.Create(ctx, leave.LeaveRequest{
		UserID: userID,
		Date:   date,
		Reason: req.Reason,
		Status: leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

// GetMyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) GetMyLeaves(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, int64, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, 0, err
	}

	filter.UserID = &userID

	records, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toResponses(records), total, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, int64, error) {
	records, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}

	return toResponses(records), total, nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.review(ctx, id, leave.StatusApproved, nil)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	var note *string
	if req.Note != "" {
		note = &req.Note
	}
	return s.review(ctx, id, leave.StatusRejected, note)
}

func (s *LeaveServiceImpl) review(ctx context.Context, id string, status leave.RequestStatus, note *string) (leave.LeaveResponse, error) {
	reviewerID, err := callerID(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := s.LeaveRepository.UpdateStatus(ctx, id, status, reviewerID, note); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	updated, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	// Tell the requester the outcome if they have a dashboard open
	s.hub.Publish(request.UserID, sse.Event{
		UserID: request.UserID,
		Event:  sse.EventLeaveReviewed,
		Data: map[string]string{
			"leave_request_id": id,
			"status":           string(status),
		},
	})

	return toResponse(updated), nil
}

func toResponse(record leave.LeaveRequest) leave.LeaveResponse {
	var reviewedAt *string
	if record.ReviewedAt != nil {
		formatted := record.ReviewedAt.Format("2006-01-02 15:04:05")
		reviewedAt = &formatted
	}

	return leave.LeaveResponse{
		ID:         record.ID,
		UserID:     record.UserID,
		UserName:   record.UserName,
		Date:       record.Date.Format("2006-01-02"),
		Reason:     record.Reason,
		Status:     string(record.Status),
		ReviewedBy: record.ReviewedBy,
		ReviewedAt: reviewedAt,
		ReviewNote: record.ReviewNote,
		CreatedAt:  record.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func toResponses(records []leave.LeaveRequest) []leave.LeaveResponse {
	responses := make([]leave.LeaveResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return responses
}
