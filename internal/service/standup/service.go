package standup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/department"
	"github.com/teampulse/standup-backend-go/internal/domain/leave"
	"github.com/teampulse/standup-backend-go/internal/domain/standup"
	"github.com/teampulse/standup-backend-go/internal/domain/user"
	"github.com/teampulse/standup-backend-go/internal/pkg/database"
	"github.com/teampulse/standup-backend-go/internal/pkg/sse"
	"github.com/teampulse/standup-backend-go/internal/pkg/webhook"
	"github.com/teampulse/standup-backend-go/internal/service/file"
)

type StandupServiceImpl struct {
	db *database.DB
	standup.StandupRepository
	leave.LeaveRepository
	user.UserRepository
	department.DepartmentRepository
	fileService   file.FileService
	webhookClient *webhook.Client
	hub           *sse.Hub
	window        Window
	location      *time.Location
	mediaBucket   string
}

func NewStandupService(
	db *database.DB,
	standupRepo standup.StandupRepository,
	leaveRepo leave.LeaveRepository,
	userRepo user.UserRepository,
	departmentRepo department.DepartmentRepository,
	fileService file.FileService,
	webhookClient *webhook.Client,
	hub *sse.Hub,
	window Window,
	location *time.Location,
	mediaBucket string,
) standup.StandupService {
	return &StandupServiceImpl{
		db:                   db,
		StandupRepository:    standupRepo,
		LeaveRepository:      leaveRepo,
		UserRepository:       userRepo,
		DepartmentRepository: departmentRepo,
		fileService:          fileService,
		webhookClient:        webhookClient,
		hub:                  hub,
		window:               window,
		location:             location,
		mediaBucket:          mediaBucket,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func claimsFromContext(ctx context.Context) (userID string, departmentID *string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", nil, fmt.Errorf("user_id claim is missing or invalid")
	}

	if deptID, ok := claims["department_id"].(string); ok && deptID != "" {
		departmentID = &deptID
	}

	return userID, departmentID, nil
}

// todayInputs fetches today's submission and approved leave for the user.
func (s *StandupServiceImpl) todayInputs(ctx context.Context, userID, dateLocal string) (*standup.Standup, *leave.LeaveRequest, error) {
	sub, err := s.StandupRepository.GetByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get today's standup: %w", err)
	}
	// A missed row stamped by the sweep does not count as a submission
	if sub != nil && sub.Status != "submitted" {
		sub = nil
	}

	approvedLeave, err := s.LeaveRepository.GetApprovedByUserAndDate(ctx, userID, dateLocal)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get approved leave: %w", err)
	}

	return sub, approvedLeave, nil
}

func gateError(status standup.TodayStatus) error {
	switch status {
	case standup.StatusWeekend:
		return standup.ErrWeekendSubmission
	case standup.StatusOnLeave:
		return standup.ErrOnApprovedLeave
	case standup.StatusSubmitted:
		return standup.ErrAlreadySubmittedToday
	default:
		return standup.ErrWindowClosed
	}
}

// Submit implements standup.StandupService.
func (s *StandupServiceImpl) Submit(ctx context.Context, req standup.SubmitRequest) (standup.StandupResponse, error) {
	if err := req.Validate(); err != nil {
		return standup.StandupResponse{}, err
	}

	userID, departmentID, err := claimsFromContext(ctx)
	if err != nil {
		return standup.StandupResponse{}, err
	}

	nowUTC := time.Now().UTC()
	nowLocal := nowUTC.In(s.location)
	dateLocal := nowLocal.Format("2006-01-02")

	sub, approvedLeave, err := s.todayInputs(ctx, userID, dateLocal)
	if err != nil {
		return standup.StandupResponse{}, err
	}

	status, _ := s.window.ComputeTodayStatus(nowLocal, sub, approvedLeave, req.TestMode)
	if !s.window.CanSubmit(status, nowLocal, req.TestMode) {
		return standup.StandupResponse{}, gateError(status)
	}

	data := standup.Standup{
		UserID:       userID,
		DepartmentID: departmentID,

		// Date is the working day, not a timestamp
		Date:        time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC),
		SubmittedAt: nowUTC,

		Yesterday: req.Yesterday,
		Today:     req.Today,
		Blockers:  req.Blockers,
		Method:    string(user.MethodText),
		Status:    "submitted",
	}

	created, err := s.StandupRepository.Create(ctx, data)
	if err != nil {
		return standup.StandupResponse{}, fmt.Errorf("failed to create standup record: %w", err)
	}

	s.notifyManager(ctx, created)

	return toResponse(created), nil
}

// SubmitMedia implements standup.StandupService.
func (s *StandupServiceImpl) SubmitMedia(ctx context.Context, req standup.SubmitMediaRequest) (standup.StandupResponse, error) {
	if err := req.Validate(); err != nil {
		return standup.StandupResponse{}, err
	}

	userID, departmentID, err := claimsFromContext(ctx)
	if err != nil {
		return standup.StandupResponse{}, err
	}

	nowUTC := time.Now().UTC()
	nowLocal := nowUTC.In(s.location)
	dateLocal := nowLocal.Format("2006-01-02")

	sub, approvedLeave, err := s.todayInputs(ctx, userID, dateLocal)
	if err != nil {
		return standup.StandupResponse{}, err
	}

	status, _ := s.window.ComputeTodayStatus(nowLocal, sub, approvedLeave, req.TestMode)
	if !s.window.CanSubmit(status, nowLocal, req.TestMode) {
		return standup.StandupResponse{}, gateError(status)
	}

	day := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)

	mediaPath, err := s.fileService.UploadStandupMedia(ctx, userID, day, req.File, req.FileHeader.Filename, req.MediaType)
	if err != nil {
		return standup.StandupResponse{}, fmt.Errorf("failed to upload standup media: %w", err)
	}

	mediaURL, err := s.fileService.GetFileURL(ctx, mediaPath, 0)
	if err != nil {
		return standup.StandupResponse{}, fmt.Errorf("failed to resolve media URL: %w", err)
	}

	data := standup.Standup{
		UserID:       userID,
		DepartmentID: departmentID,
		Date:         day,
		SubmittedAt:  nowUTC,
		Method:       req.MediaType,
		MediaURL:     &mediaURL,
		Status:       "submitted",
	}

	created, err := s.StandupRepository.Create(ctx, data)
	if err != nil {
		// Don't leave the uploaded file orphaned
		if delErr := s.fileService.DeleteFile(ctx, mediaPath); delErr != nil {
			slog.Warn("failed to remove orphaned standup media", "path", mediaPath, "error", delErr)
		}
		return standup.StandupResponse{}, fmt.Errorf("failed to create standup record: %w", err)
	}

	// The processing pipeline transcribes the media and calls back with the
	// extracted fields. Delivery failures are terminal for the caller.
	payload := webhook.MediaPayload{
		UserID:        userID,
		Date:          dateLocal,
		MediaURL:      mediaURL,
		MediaType:     req.MediaType,
		MediaFilename: req.FileHeader.Filename,
		Bucket:        s.mediaBucket,
	}
	if err := s.webhookClient.Notify(ctx, payload); err != nil {
		slog.Error("Media webhook delivery failed", "standup_id", created.ID, "error", err)
		return standup.StandupResponse{}, fmt.Errorf("%w: %s", standup.ErrMediaProcessing, err.Error())
	}

	s.notifyManager(ctx, created)

	return toResponse(created), nil
}

// GetTodayStatus implements standup.StandupService.
func (s *StandupServiceImpl) GetTodayStatus(ctx context.Context, testMode bool) (standup.TodayStatusResponse, error) {
	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return standup.TodayStatusResponse{}, err
	}

	nowLocal := time.Now().In(s.location)
	dateLocal := nowLocal.Format("2006-01-02")

	sub, approvedLeave, err := s.todayInputs(ctx, userID, dateLocal)
	if err != nil {
		return standup.TodayStatusResponse{}, err
	}

	status, submittedAt := s.window.ComputeTodayStatus(nowLocal, sub, approvedLeave, testMode)

	return standup.TodayStatusResponse{
		Status:        string(status),
		SubmittedAt:   timePtrToString(submittedAt),
		CanSubmit:     s.window.CanSubmit(status, nowLocal, testMode),
		TimeRemaining: s.window.TimeRemaining(nowLocal, testMode),
	}, nil
}

// GetMyStandups implements standup.StandupService.
func (s *StandupServiceImpl) GetMyStandups(ctx context.Context, filter standup.MyStandupFilter) ([]standup.StandupResponse, int64, error) {
	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	records, total, err := s.StandupRepository.GetMyStandups(ctx, userID, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list standups: %w", err)
	}

	return toResponses(records), total, nil
}

// GetMyStats implements standup.StandupService.
func (s *StandupServiceImpl) GetMyStats(ctx context.Context) (standup.StatsResponse, error) {
	userID, _, err := claimsFromContext(ctx)
	if err != nil {
		return standup.StatsResponse{}, err
	}

	nowLocal := time.Now().In(s.location)
	asOf := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, time.UTC)
	from := asOf.AddDate(0, 0, -MaxStreakLookbackDays)

	dates, err := s.StandupRepository.GetSubmittedDates(ctx, userID, from, asOf)
	if err != nil {
		return standup.StatsResponse{}, fmt.Errorf("failed to get submitted dates: %w", err)
	}

	submitted := NewDateSet(dates...)

	return standup.StatsResponse{
		CurrentStreak:     ComputeStreak(submitted, asOf),
		WeeklyCompliance:  ComplianceRate(submitted, 7, asOf),
		MonthlyCompliance: ComplianceRate(submitted, 30, asOf),
	}, nil
}

// List implements standup.StandupService.
func (s *StandupServiceImpl) List(ctx context.Context, filter standup.StandupFilter) ([]standup.StandupResponse, int64, error) {
	records, total, err := s.StandupRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list standups: %w", err)
	}

	return toResponses(records), total, nil
}

// ApplyTranscript implements standup.StandupService.
func (s *StandupServiceImpl) ApplyTranscript(ctx context.Context, standupID string, transcript string) error {
	if err := s.StandupRepository.SetTranscript(ctx, standupID, transcript); err != nil {
		return err
	}

	slog.Info("Transcript applied", "standup_id", standupID)
	return nil
}

// notifyManager pushes a live event to the submitter's department manager so
// open dashboards can refetch.
func (s *StandupServiceImpl) notifyManager(ctx context.Context, created standup.Standup) {
	if created.DepartmentID == nil {
		return
	}

	dept, err := s.DepartmentRepository.GetByID(ctx, *created.DepartmentID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) && !errors.Is(err, department.ErrDepartmentNotFound) {
			slog.Error("Failed to resolve department for standup event", "error", err)
		}
		return
	}
	if dept.ManagerID == nil {
		return
	}

	s.hub.Publish(*dept.ManagerID, sse.Event{
		UserID: *dept.ManagerID,
		Event:  sse.EventStandupSubmitted,
		Data: map[string]string{
			"standup_id": created.ID,
			"user_id":    created.UserID,
			"date":       created.Date.Format("2006-01-02"),
		},
	})
}

func toResponse(record standup.Standup) standup.StandupResponse {
	return standup.StandupResponse{
		ID:          record.ID,
		UserID:      record.UserID,
		UserName:    record.UserName,
		Date:        record.Date.Format("2006-01-02"),
		SubmittedAt: record.SubmittedAt.Format("2006-01-02 15:04:05"),
		Yesterday:   record.Yesterday,
		Today:       record.Today,
		Blockers:    record.Blockers,
		Method:      record.Method,
		MediaURL:    record.MediaURL,
		Transcript:  record.Transcript,
		Status:      record.Status,
	}
}

func toResponses(records []standup.Standup) []standup.StandupResponse {
	responses := make([]standup.StandupResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toResponse(record))
	}
	return responses
}
