package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/srad-secure/srad-backend-go/internal/domain/shift"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Handover(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

// List implements ShiftHandler.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := shift.ShiftFilter{Status: optionalQuery[shift.Status](r, "status")}

	shifts, err := h.shiftService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListShifts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, shifts, 0)
}

// Current implements ShiftHandler.
func (h *ShiftHandlerImpl) Current(w http.ResponseWriter, r *http.Request) {
	current, err := h.shiftService.Current(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, current)
}

// Start implements ShiftHandler.
func (h *ShiftHandlerImpl) Start(w http.ResponseWriter, r *http.Request) {
	var req shift.StartShiftRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("StartShift decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	started, err := h.shiftService.Start(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Supervisor shift started", started)
}

// Handover implements ShiftHandler.
func (h *ShiftHandlerImpl) Handover(w http.ResponseWriter, r *http.Request) {
	var req shift.HandoverRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ShiftHandover decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	handover, err := h.shiftService.Handover(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift handed over", handover)
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{
		shiftService: shiftService,
	}
}
