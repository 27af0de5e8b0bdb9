package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/dispatch"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

type AbsenceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Report(w http.ResponseWriter, r *http.Request)
	Candidates(w http.ResponseWriter, r *http.Request)
	Cover(w http.ResponseWriter, r *http.Request)
	Uncover(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService  absence.AbsenceService
	dispatchService dispatch.DispatchService
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := absence.AbsenceFilter{
		Status: optionalQuery[absence.Status](r, "status"),
		PostID: optionalQuery[string](r, "post_id"),
	}

	absences, err := h.absenceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListAbsences service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, absences, 0)
}

// Get implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.absenceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, a)
}

// Report implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	var req absence.ReportAbsenceRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReportAbsence decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	a, err := h.absenceService.Report(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Absence reported successfully", a)
}

// Candidates implements AbsenceHandler. ?limit=N truncates the ranking.
func (h *AbsenceHandlerImpl) Candidates(w http.ResponseWriter, r *http.Request) {
	limit, ok := intQuery(r, "limit", 0)
	if !ok {
		response.BadRequest(w, "limit must be a non-negative integer", nil)
		return
	}

	ranking, err := h.dispatchService.RankForAbsence(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ranking)
}

// Cover implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Cover(w http.ResponseWriter, r *http.Request) {
	var req dispatch.CoverRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Cover decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AbsenceID = chi.URLParam(r, "id")

	coverage, err := h.dispatchService.CommitCoverage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence covered successfully", coverage)
}

// Uncover implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Uncover(w http.ResponseWriter, r *http.Request) {
	a, err := h.absenceService.MarkUncovered(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Absence closed without coverage", a)
}

func NewAbsenceHandler(absenceService absence.AbsenceService, dispatchService dispatch.DispatchService) AbsenceHandler {
	return &AbsenceHandlerImpl{
		absenceService:  absenceService,
		dispatchService: dispatchService,
	}
}
