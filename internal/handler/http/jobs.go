package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

// JobRunner triggers a registered background job by name.
type JobRunner interface {
	Jobs() []string
	Run(ctx context.Context, name string) error
}

type JobHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Run(w http.ResponseWriter, r *http.Request)
}

type JobHandlerImpl struct {
	runner JobRunner
}

// List implements JobHandler.
func (h *JobHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.runner.Jobs())
}

// Run implements JobHandler.
func (h *JobHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.runner.Run(r.Context(), name); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job executed", map[string]string{"job": name})
}

func NewJobHandler(runner JobRunner) JobHandler {
	return &JobHandlerImpl{runner: runner}
}
