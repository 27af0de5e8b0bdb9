package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

type ExceptionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Request(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type ExceptionHandlerImpl struct {
	exceptionService exception.ExceptionService
}

// List implements ExceptionHandler.
func (h *ExceptionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := exception.ExceptionFilter{
		Status:  optionalQuery[exception.Status](r, "status"),
		GuardID: optionalQuery[string](r, "guard_id"),
		PostID:  optionalQuery[string](r, "post_id"),
	}

	exceptions, err := h.exceptionService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListExceptions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, exceptions, 0)
}

// Request implements ExceptionHandler.
func (h *ExceptionHandlerImpl) Request(w http.ResponseWriter, r *http.Request) {
	var req exception.RequestExceptionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RequestException decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	e, err := h.exceptionService.Request(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Regional exception requested", e)
}

// Decide implements ExceptionHandler.
func (h *ExceptionHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req exception.DecideExceptionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("DecideException decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	e, err := h.exceptionService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Regional exception decided", e)
}

func NewExceptionHandler(exceptionService exception.ExceptionService) ExceptionHandler {
	return &ExceptionHandlerImpl{
		exceptionService: exceptionService,
	}
}
