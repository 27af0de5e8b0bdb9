package exception

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	auditService "github.com/srad-secure/srad-backend-go/internal/service/audit"
)

type ExceptionServiceImpl struct {
	exception.ExceptionRepository
	guardRepo guard.GuardRepository
	postRepo  post.PostRepository
	audit     audit.AuditService
	now       func() time.Time
}

func NewExceptionService(
	exceptionRepo exception.ExceptionRepository,
	guardRepo guard.GuardRepository,
	postRepo post.PostRepository,
	auditSvc audit.AuditService,
) exception.ExceptionService {
	return &ExceptionServiceImpl{
		ExceptionRepository: exceptionRepo,
		guardRepo:           guardRepo,
		postRepo:            postRepo,
		audit:               auditSvc,
		now:                 time.Now,
	}
}

// Request implements exception.ExceptionService.
func (s *ExceptionServiceImpl) Request(ctx context.Context, req exception.RequestExceptionRequest) (exception.ExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return exception.ExceptionResponse{}, err
	}

	g, err := s.guardRepo.GetByID(ctx, req.GuardID)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}
	p, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return exception.ExceptionResponse{}, err
	}
	if g.IsAuthorizedFor(p.Region) {
		return exception.ExceptionResponse{}, exception.ErrAlreadyAuthorized
	}

	actor := auditService.ActorFromContext(ctx)
	created, err := s.ExceptionRepository.Create(ctx, exception.RegionalException{
		GuardID:     g.ID,
		PostID:      p.ID,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      exception.StatusPending,
		RequestedBy: actor.Name,
		RequestedAt: s.now().UTC(),
	})
	if err != nil {
		return exception.ExceptionResponse{}, fmt.Errorf("failed to create regional exception: %w", err)
	}

	resp := exception.ToResponse(created)
	if _, err := s.audit.RecordAs(ctx, actor, audit.RecordRequest{
		Action:     audit.ActionExceptionRequested,
		EntityType: audit.EntityException,
		EntityID:   created.ID,
		New:        resp,
	}); err != nil {
		return exception.ExceptionResponse{}, err
	}

	slog.Info("Regional exception requested", "exception_id", created.ID, "guard_id", g.ID, "post_id", p.ID, "region", p.Region)
	return resp, nil
}

// Decide implements exception.ExceptionService.
func (s *ExceptionServiceImpl) Decide(ctx context.Context, req exception.DecideExceptionRequest) (exception.ExceptionResponse, error) {
	if err := req.Validate(); err != nil {
		return exception.ExceptionResponse{}, err
	}

	actor := auditService.ActorFromContext(ctx)
	now := s.now().UTC()
	updated, err := s.ExceptionRepository.Update(ctx, req.ID, func(e *exception.RegionalException) error {
		if e.Status != exception.StatusPending {
			return exception.ErrAlreadyDecided
		}
		by := actor.Name
		e.Status = req.Decision
		e.DecidedBy = &by
		e.DecidedAt = &now
		return nil
	})
	if err != nil {
		return exception.ExceptionResponse{}, err
	}

	if _, err := s.audit.RecordAs(ctx, actor, audit.RecordRequest{
		Action:     audit.ActionExceptionDecided,
		EntityType: audit.EntityException,
		EntityID:   updated.ID,
		Previous:   exception.StatusPending,
		New:        updated.Status,
	}); err != nil {
		return exception.ExceptionResponse{}, err
	}

	slog.Info("Regional exception decided", "exception_id", updated.ID, "decision", updated.Status, "decided_by", actor.Name)
	return exception.ToResponse(updated), nil
}

// List implements exception.ExceptionService.
func (s *ExceptionServiceImpl) List(ctx context.Context, filter exception.ExceptionFilter) ([]exception.ExceptionResponse, error) {
	items, err := s.ExceptionRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list regional exceptions: %w", err)
	}

	out := make([]exception.ExceptionResponse, 0, len(items))
	for _, e := range items {
		out = append(out, exception.ToResponse(e))
	}
	return out, nil
}
