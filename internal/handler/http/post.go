package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
)

type PostHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
}

type PostHandlerImpl struct {
	postService post.PostService
}

// List implements PostHandler.
func (h *PostHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := post.PostFilter{
		Region: optionalQuery[region.Region](r, "region"),
		Status: optionalQuery[post.Status](r, "status"),
	}

	posts, err := h.postService.List(r.Context(), filter)
	if err != nil {
		slog.Error("ListPosts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.List(w, posts, 0)
}

// Get implements PostHandler.
func (h *PostHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")
	if postID == "" {
		response.BadRequest(w, "Post ID is required", nil)
		return
	}

	p, err := h.postService.Get(r.Context(), postID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// Activate implements PostHandler.
func (h *PostHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	var req post.ActivatePostRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ActivatePost decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	p, err := h.postService.Activate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Post activated successfully", p)
}

func NewPostHandler(postService post.PostService) PostHandler {
	return &PostHandlerImpl{
		postService: postService,
	}
}
