package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/teampulse/standup-backend-go/internal/domain/deliverable"
	"github.com/teampulse/standup-backend-go/internal/handler/http/response"
)

type DeliverableHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	GetMyDeliverables(w http.ResponseWriter, r *http.Request)
	GetReport(w http.ResponseWriter, r *http.Request)
}

type DeliverableHandlerImpl struct {
	deliverableService deliverable.DeliverableService
}

func NewDeliverableHandler(deliverableService deliverable.DeliverableService) DeliverableHandler {
	return &DeliverableHandlerImpl{deliverableService: deliverableService}
}

// Upsert implements DeliverableHandler.
func (h *DeliverableHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var upsertReq deliverable.UpsertDeliverableRequest

	if err := json.NewDecoder(r.Body).Decode(&upsertReq); err != nil {
		slog.Error("Upsert deliverable decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.deliverableService.Upsert(r.Context(), upsertReq)
	if err != nil {
		slog.Error("Upsert deliverable service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Deliverable saved", "deliverable_id", result.ID, "day_number", result.DayNumber)
	response.SuccessWithMessage(w, "Deliverable saved", result)
}

// GetMyDeliverables implements DeliverableHandler.
func (h *DeliverableHandlerImpl) GetMyDeliverables(w http.ResponseWriter, r *http.Request) {
	deliverables, err := h.deliverableService.GetMyDeliverables(r.Context())
	if err != nil {
		slog.Error("GetMyDeliverables service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, deliverables)
}

// GetReport implements DeliverableHandler.
func (h *DeliverableHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.deliverableService.GetReport(r.Context())
	if err != nil {
		slog.Error("GetReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
