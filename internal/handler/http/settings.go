package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	UpdateParameter(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settings.SettingsService
}

// Get implements SettingsHandler.
func (h *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.Get(r.Context())
	if err != nil {
		slog.Error("GetSettings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, cfg)
}

// UpdateParameter implements SettingsHandler.
func (h *SettingsHandlerImpl) UpdateParameter(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateParameterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateParameter decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	param, err := h.settingsService.UpdateParameter(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Parameter updated successfully", param)
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{
		settingsService: settingsService,
	}
}
