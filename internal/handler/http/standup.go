package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/teampulse/standup-backend-go/internal/domain/standup"
	"github.com/teampulse/standup-backend-go/internal/handler/http/response"
)

// maxMediaUploadSize caps standup audio/image uploads at 25 MB
const maxMediaUploadSize = 25 << 20

type StandupHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	SubmitMedia(w http.ResponseWriter, r *http.Request)
	GetTodayStatus(w http.ResponseWriter, r *http.Request)
	GetMyStandups(w http.ResponseWriter, r *http.Request)
	GetMyStats(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	TranscriptCallback(w http.ResponseWriter, r *http.Request)
}

type StandupHandlerImpl struct {
	standupService standup.StandupService
}

func NewStandupHandler(standupService standup.StandupService) StandupHandler {
	return &StandupHandlerImpl{standupService: standupService}
}

// testModeFromRequest reads the explicit test-mode flag used by preview
// environments to bypass the submission window.
func testModeFromRequest(r *http.Request) bool {
	if v := r.Header.Get("X-Test-Mode"); v != "" {
		return v == "true" || v == "1"
	}
	return r.URL.Query().Get("test_mode") == "true"
}

// Submit implements StandupHandler.
func (h *StandupHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var submitReq standup.SubmitRequest

	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	submitReq.TestMode = submitReq.TestMode || testModeFromRequest(r)

	result, err := h.standupService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Standup submitted", "standup_id", result.ID)
	response.Created(w, "Standup submitted successfully", result)
}

// SubmitMedia implements StandupHandler.
func (h *StandupHandlerImpl) SubmitMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMediaUploadSize); err != nil {
		slog.Error("SubmitMedia parse form error", "error", err)
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Media file is required", nil)
		return
	}
	defer file.Close()

	submitReq := standup.SubmitMediaRequest{
		MediaType:  r.FormValue("media_type"),
		TestMode:   r.FormValue("test_mode") == "true" || testModeFromRequest(r),
		File:       file,
		FileHeader: header,
	}

	result, err := h.standupService.SubmitMedia(r.Context(), submitReq)
	if err != nil {
		slog.Error("SubmitMedia service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Media standup submitted", "standup_id", result.ID)
	response.Created(w, "Standup submitted successfully", result)
}

// GetTodayStatus implements StandupHandler.
func (h *StandupHandlerImpl) GetTodayStatus(w http.ResponseWriter, r *http.Request) {
	result, err := h.standupService.GetTodayStatus(r.Context(), testModeFromRequest(r))
	if err != nil {
		slog.Error("GetTodayStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyStandups implements StandupHandler.
func (h *StandupHandlerImpl) GetMyStandups(w http.ResponseWriter, r *http.Request) {
	filter := standup.MyStandupFilter{
		StartDate: queryParam(r, "start_date"),
		EndDate:   queryParam(r, "end_date"),
		Status:    queryParam(r, "status"),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 20),
	}

	standups, total, err := h.standupService.GetMyStandups(r.Context(), filter)
	if err != nil {
		slog.Error("GetMyStandups service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, standups, pageMeta(filter.Page, filter.Limit, total))
}

// GetMyStats implements StandupHandler.
func (h *StandupHandlerImpl) GetMyStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.standupService.GetMyStats(r.Context())
	if err != nil {
		slog.Error("GetMyStats service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements StandupHandler.
func (h *StandupHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := standup.StandupFilter{
		UserID:       queryParam(r, "user_id"),
		DepartmentID: queryParam(r, "department_id"),
		Date:         queryParam(r, "date"),
		StartDate:    queryParam(r, "start_date"),
		EndDate:      queryParam(r, "end_date"),
		Status:       queryParam(r, "status"),
		Page:         queryInt(r, "page", 1),
		Limit:        queryInt(r, "limit", 20),
	}

	standups, total, err := h.standupService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List standups service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, standups, pageMeta(filter.Page, filter.Limit, total))
}

type transcriptCallbackRequest struct {
	StandupID  string `json:"standup_id"`
	Transcript string `json:"transcript"`
}

// TranscriptCallback implements StandupHandler. The media pipeline posts the
// transcription result back here once processing finishes.
func (h *StandupHandlerImpl) TranscriptCallback(w http.ResponseWriter, r *http.Request) {
	var callbackReq transcriptCallbackRequest

	if err := json.NewDecoder(r.Body).Decode(&callbackReq); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if callbackReq.StandupID == "" || callbackReq.Transcript == "" {
		response.BadRequest(w, "standup_id and transcript are required", nil)
		return
	}

	if err := h.standupService.ApplyTranscript(r.Context(), callbackReq.StandupID, callbackReq.Transcript); err != nil {
		slog.Error("TranscriptCallback service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transcript stored", nil)
}

func queryParam(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func pageMeta(page, limit int, total int64) *response.Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
