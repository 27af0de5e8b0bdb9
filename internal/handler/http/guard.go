package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/dispatch"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

type GuardHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Admit(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	UpdateDocument(w http.ResponseWriter, r *http.Request)
	Reassign(w http.ResponseWriter, r *http.Request)
}

type GuardHandlerImpl struct {
	guardService    guard.GuardService
	dispatchService dispatch.DispatchService
}

// List implements GuardHandler.
func (h *GuardHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := guard.GuardFilter{
		Query:  optionalQuery[string](r, "q"),
		Crew:   optionalQuery[guard.Crew](r, "crew"),
		Status: optionalQuery[guard.Status](r, "status"),
	}

	guards, err := h.guardService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListGuards service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, guards, 0)
}

// Get implements GuardHandler.
func (h *GuardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	guardID := chi.URLParam(r, "id")
	if guardID == "" {
		response.BadRequest(w, "Guard ID is required", nil)
		return
	}

	g, err := h.guardService.Get(r.Context(), guardID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, g)
}

// Admit implements GuardHandler.
func (h *GuardHandlerImpl) Admit(w http.ResponseWriter, r *http.Request) {
	var req guard.AdmitGuardRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Admit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	admission, err := h.guardService.Admit(r.Context(), req)
	if err != nil {
		slog.Warn("Admit rejected", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Guard admitted successfully", admission)
}

// CheckIn implements GuardHandler.
func (h *GuardHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req guard.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.GuardID = chi.URLParam(r, "id")

	g, err := h.guardService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-in recorded", g)
}

// UpdateStatus implements GuardHandler.
func (h *GuardHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req guard.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.GuardID = chi.URLParam(r, "id")

	g, err := h.guardService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Guard status updated successfully", g)
}

// UpdateDocument implements GuardHandler.
func (h *GuardHandlerImpl) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req guard.UpdateDocumentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDocument decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.GuardID = chi.URLParam(r, "id")

	g, err := h.guardService.UpdateDocument(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document renewed successfully", g)
}

// Reassign implements GuardHandler.
func (h *GuardHandlerImpl) Reassign(w http.ResponseWriter, r *http.Request) {
	var req dispatch.ReassignRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Reassign decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.GuardID = chi.URLParam(r, "id")

	result, err := h.dispatchService.Reassign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Guard reassigned successfully", result)
}

func NewGuardHandler(guardService guard.GuardService, dispatchService dispatch.DispatchService) GuardHandler {
	return &GuardHandlerImpl{
		guardService:    guardService,
		dispatchService: dispatchService,
	}
}
