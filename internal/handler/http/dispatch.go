package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/srad-secure/srad-backend-go/internal/domain/dispatch"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

type DispatchHandler interface {
	Validate(w http.ResponseWriter, r *http.Request)
}

type DispatchHandlerImpl struct {
	dispatchService dispatch.DispatchService
}

// Validate implements DispatchHandler. A rejected dispatch is still a 200;
// the reason travels in the body.
func (h *DispatchHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req dispatch.ValidateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ValidateDispatch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	validation, err := h.dispatchService.ValidateDispatch(r.Context(), req.GuardID, req.PostID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, validation)
}

func NewDispatchHandler(dispatchService dispatch.DispatchService) DispatchHandler {
	return &DispatchHandlerImpl{
		dispatchService: dispatchService,
	}
}
