package post

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
)

type PostServiceImpl struct {
	post.PostRepository
	audit audit.AuditService
	now   func() time.Time
}

func NewPostService(postRepo post.PostRepository, auditService audit.AuditService) post.PostService {
	return &PostServiceImpl{
		PostRepository: postRepo,
		audit:          auditService,
		now:            time.Now,
	}
}

// Activate implements post.PostService.
func (s *PostServiceImpl) Activate(ctx context.Context, req post.ActivatePostRequest) (post.PostResponse, error) {
	if err := req.Validate(); err != nil {
		return post.PostResponse{}, err
	}

	created, err := s.PostRepository.Create(ctx, post.Post{
		Name:              strings.ToUpper(strings.TrimSpace(req.Name)),
		Client:            strings.TrimSpace(req.Client),
		Address:           strings.TrimSpace(req.Address),
		Region:            req.Region,
		State:             req.State,
		RequiredHeadcount: req.RequiredHeadcount,
		Risk:              req.Risk,
		Shift:             req.Shift,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		RadiusMeters:      req.RadiusMeters,
		Critical:          req.Critical,
		Status:            post.StatusActive,
		ActivatedAt:       s.now().UTC(),
	})
	if err != nil {
		return post.PostResponse{}, fmt.Errorf("failed to create post: %w", err)
	}

	resp := post.ToResponse(created)
	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionPostActivated,
		EntityType: audit.EntityPost,
		EntityID:   created.ID,
		New:        resp,
	}); err != nil {
		return post.PostResponse{}, err
	}

	slog.Info("Post activated", "post_id", created.ID, "region", created.Region, "shift", created.Shift)
	return resp, nil
}

// Get implements post.PostService.
func (s *PostServiceImpl) Get(ctx context.Context, id string) (post.PostResponse, error) {
	p, err := s.PostRepository.GetByID(ctx, id)
	if err != nil {
		return post.PostResponse{}, err
	}
	return post.ToResponse(p), nil
}

// List implements post.PostService.
func (s *PostServiceImpl) List(ctx context.Context, filter post.PostFilter) ([]post.PostResponse, error) {
	posts, err := s.PostRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	out := make([]post.PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, post.ToResponse(p))
	}
	return out, nil
}
