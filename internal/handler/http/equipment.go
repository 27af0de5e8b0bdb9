package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/equipment"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

type EquipmentHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Return(w http.ResponseWriter, r *http.Request)
	Restore(w http.ResponseWriter, r *http.Request)
}

type EquipmentHandlerImpl struct {
	equipmentService equipment.EquipmentService
}

// List implements EquipmentHandler.
func (h *EquipmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := equipment.EquipmentFilter{
		Kind:    optionalQuery[equipment.Kind](r, "kind"),
		Status:  optionalQuery[equipment.Status](r, "status"),
		GuardID: optionalQuery[string](r, "guard_id"),
	}

	items, err := h.equipmentService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListEquipment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, items, 0)
}

// Summary implements EquipmentHandler.
func (h *EquipmentHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.equipmentService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Register implements EquipmentHandler.
func (h *EquipmentHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req equipment.RegisterEquipmentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RegisterEquipment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	item, err := h.equipmentService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Equipment registered", item)
}

// CheckOut implements EquipmentHandler.
func (h *EquipmentHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req equipment.CheckOutRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckOutEquipment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	item, err := h.equipmentService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Equipment checked out", item)
}

// Return implements EquipmentHandler. The body is optional.
func (h *EquipmentHandlerImpl) Return(w http.ResponseWriter, r *http.Request) {
	var req equipment.ReturnRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("ReturnEquipment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	item, err := h.equipmentService.Return(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Equipment returned", item)
}

// Restore implements EquipmentHandler.
func (h *EquipmentHandlerImpl) Restore(w http.ResponseWriter, r *http.Request) {
	item, err := h.equipmentService.Restore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Equipment back in service", item)
}

func NewEquipmentHandler(equipmentService equipment.EquipmentService) EquipmentHandler {
	return &EquipmentHandlerImpl{
		equipmentService: equipmentService,
	}
}
