package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/srad-secure/srad-backend-go/internal/domain/dashboard"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// Readiness returns the operational readiness score
	Readiness(w http.ResponseWriter, r *http.Request)
	// Violations returns per-post abandonment and regional compliance
	Violations(w http.ResponseWriter, r *http.Request)
	// Simulate estimates regional capacity for new posts
	Simulate(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Readiness handles GET /dashboard/readiness
func (h *dashboardHandlerImpl) Readiness(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Readiness(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Violations handles GET /dashboard/violations
func (h *dashboardHandlerImpl) Violations(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.OperationalMap(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Simulate handles POST /dashboard/simulate
func (h *dashboardHandlerImpl) Simulate(w http.ResponseWriter, r *http.Request) {
	var req dashboard.SimulationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Simulate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.dashboardService.Simulate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
