package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/incident"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

type IncidentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type IncidentHandlerImpl struct {
	incidentService incident.IncidentService
}

// List implements IncidentHandler.
func (h *IncidentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := incident.IncidentFilter{
		Status: optionalQuery[incident.Status](r, "status"),
		PostID: optionalQuery[string](r, "post_id"),
	}

	incidents, err := h.incidentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListIncidents service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, incidents, 0)
}

// Register implements IncidentHandler.
func (h *IncidentHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req incident.RegisterIncidentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RegisterIncident decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	i, err := h.incidentService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Incident registered", i)
}

// UpdateStatus implements IncidentHandler.
func (h *IncidentHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req incident.UpdateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateIncidentStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	i, err := h.incidentService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Incident status updated", i)
}

func NewIncidentHandler(incidentService incident.IncidentService) IncidentHandler {
	return &IncidentHandlerImpl{
		incidentService: incidentService,
	}
}
