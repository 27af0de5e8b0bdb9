package incident

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/incident"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	auditService "github.com/srad-secure/srad-backend-go/internal/service/audit"
)

type IncidentServiceImpl struct {
	incident.IncidentRepository
	guardRepo guard.GuardRepository
	postRepo  post.PostRepository
	audit     audit.AuditService
	now       func() time.Time
}

func NewIncidentService(
	incidentRepo incident.IncidentRepository,
	guardRepo guard.GuardRepository,
	postRepo post.PostRepository,
	auditSvc audit.AuditService,
) incident.IncidentService {
	return &IncidentServiceImpl{
		IncidentRepository: incidentRepo,
		guardRepo:          guardRepo,
		postRepo:           postRepo,
		audit:              auditSvc,
		now:                time.Now,
	}
}

// Register implements incident.IncidentService.
func (s *IncidentServiceImpl) Register(ctx context.Context, req incident.RegisterIncidentRequest) (incident.IncidentResponse, error) {
	if err := req.Validate(); err != nil {
		return incident.IncidentResponse{}, err
	}

	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return incident.IncidentResponse{}, err
	}
	if req.GuardID != "" {
		if _, err := s.guardRepo.GetByID(ctx, req.GuardID); err != nil {
			return incident.IncidentResponse{}, err
		}
	}

	actor := auditService.ActorFromContext(ctx)
	created, err := s.IncidentRepository.Create(ctx, incident.Incident{
		Kind:         req.Kind,
		Criticality:  req.Criticality,
		PostID:       req.PostID,
		GuardID:      req.GuardID,
		OccurredAt:   s.now().UTC(),
		Description:  strings.TrimSpace(req.Description),
		ActionsTaken: req.ActionsTaken,
		Status:       incident.StatusOpen,
		Operator:     actor.Name,
	})
	if err != nil {
		return incident.IncidentResponse{}, fmt.Errorf("failed to create incident: %w", err)
	}

	resp := incident.ToResponse(created)
	if _, err := s.audit.RecordAs(ctx, actor, audit.RecordRequest{
		Action:     audit.ActionIncidentRegistered,
		EntityType: audit.EntityIncident,
		EntityID:   created.ID,
		New:        resp,
	}); err != nil {
		return incident.IncidentResponse{}, err
	}

	if created.Criticality == incident.CriticalityCritical {
		slog.Warn("Critical incident registered", "incident_id", created.ID, "kind", created.Kind, "post_id", created.PostID)
	} else {
		slog.Info("Incident registered", "incident_id", created.ID, "kind", created.Kind, "post_id", created.PostID)
	}
	return resp, nil
}

// List implements incident.IncidentService.
func (s *IncidentServiceImpl) List(ctx context.Context, filter incident.IncidentFilter) ([]incident.IncidentResponse, error) {
	items, err := s.IncidentRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}

	out := make([]incident.IncidentResponse, 0, len(items))
	for _, i := range items {
		out = append(out, incident.ToResponse(i))
	}
	return out, nil
}

// UpdateStatus implements incident.IncidentService.
func (s *IncidentServiceImpl) UpdateStatus(ctx context.Context, req incident.UpdateStatusRequest) (incident.IncidentResponse, error) {
	if err := req.Validate(); err != nil {
		return incident.IncidentResponse{}, err
	}

	var previous incident.Status
	updated, err := s.IncidentRepository.Update(ctx, req.ID, func(i *incident.Incident) error {
		if !i.Status.CanTransitionTo(req.Status) {
			return fmt.Errorf("%w: %s to %s", incident.ErrInvalidTransition, i.Status, req.Status)
		}
		previous = i.Status
		i.Status = req.Status
		return nil
	})
	if err != nil {
		return incident.IncidentResponse{}, err
	}

	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionIncidentStatusChanged,
		EntityType: audit.EntityIncident,
		EntityID:   updated.ID,
		Previous:   previous,
		New:        updated.Status,
	}); err != nil {
		return incident.IncidentResponse{}, err
	}

	slog.Info("Incident status changed", "incident_id", updated.ID, "from", previous, "to", updated.Status)
	return incident.ToResponse(updated), nil
}
