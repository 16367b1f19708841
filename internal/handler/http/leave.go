package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/teampulse/standup-backend-go/internal/domain/leave"
	"github.com/teampulse/standup-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMyLeaves(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request created", "leave_request_id", result.ID)
	response.Created(w, "Leave request submitted", result)
}

// GetMyLeaves implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyLeaves(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		Status:    queryParam(r, "status"),
		StartDate: queryParam(r, "start_date"),
		EndDate:   queryParam(r, "end_date"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}

	leaves, total, err := h.leaveService.GetMyLeaves(r.Context(), filter)
	if err != nil {
		slog.Error("GetMyLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, leaves, pageMeta(filter.Page, filter.Limit, total))
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := leave.LeaveFilter{
		UserID:    queryParam(r, "user_id"),
		Status:    queryParam(r, "status"),
		StartDate: queryParam(r, "start_date"),
		EndDate:   queryParam(r, "end_date"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}

	leaves, total, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List leaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, leaves, pageMeta(filter.Page, filter.Limit, total))
}

// Approve implements LeaveHandler.
func (h *LeaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.leaveService.Approve(r.Context(), id)
	if err != nil {
		slog.Error("Approve leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request approved", "leave_request_id", id)
	response.SuccessWithMessage(w, "Leave request approved", result)
}

// Reject implements LeaveHandler.
func (h *LeaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var rejectReq leave.RejectLeaveRequest
	if r.Body != nil {
		// A rejection note is optional; an empty body is fine
		_ = json.NewDecoder(r.Body).Decode(&rejectReq)
	}

	result, err := h.leaveService.Reject(r.Context(), id, rejectReq)
	if err != nil {
		slog.Error("Reject leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request rejected", "leave_request_id", id)
	response.SuccessWithMessage(w, "Leave request rejected", result)
}
