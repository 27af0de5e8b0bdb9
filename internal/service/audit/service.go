package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/auth"
	"github.com/srad-secure/srad-backend-go/internal/pkg/sse"
)

// FeedTopic is the hub topic carrying every appended audit entry.
const FeedTopic = "operations"

// FeedEvent is the SSE event name for appended entries.
const FeedEvent = "audit"

type AuditServiceImpl struct {
	audit.AuditRepository
	hub *sse.Hub
	now func() time.Time
}

func NewAuditService(repo audit.AuditRepository, hub *sse.Hub) audit.AuditService {
	return &AuditServiceImpl{
		AuditRepository: repo,
		hub:             hub,
		now:             time.Now,
	}
}

// ActorFromContext reads the console operator from the JWT claims. Requests
// without a session are attributed to the system actor.
func ActorFromContext(ctx context.Context) audit.Actor {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil || claims == nil {
		return audit.SystemActor
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if name == "" || !auth.Role(role).Valid() {
		return audit.SystemActor
	}
	return audit.Actor{Name: name, Role: auth.Role(role)}
}

// Record implements audit.AuditService.
func (s *AuditServiceImpl) Record(ctx context.Context, req audit.RecordRequest) (audit.Entry, error) {
	return s.RecordAs(ctx, ActorFromContext(ctx), req)
}

// RecordAs implements audit.AuditService.
func (s *AuditServiceImpl) RecordAs(ctx context.Context, actor audit.Actor, req audit.RecordRequest) (audit.Entry, error) {
	if !req.Action.Valid() {
		return audit.Entry{}, audit.ErrUnknownAction
	}
	if !req.EntityType.Valid() {
		return audit.Entry{}, audit.ErrUnknownEntityType
	}

	previous, err := serialize(req.Previous)
	if err != nil {
		return audit.Entry{}, fmt.Errorf("failed to serialize previous value: %w", err)
	}
	next, err := serialize(req.New)
	if err != nil {
		return audit.Entry{}, fmt.Errorf("failed to serialize new value: %w", err)
	}

	entry := audit.Entry{
		ID:         uuid.New().String(),
		Actor:      actor,
		Action:     req.Action,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Previous:   previous,
		New:        next,
		Timestamp:  s.now().UTC(),
	}

	if err := s.AuditRepository.Append(ctx, entry); err != nil {
		return audit.Entry{}, fmt.Errorf("failed to append audit entry: %w", err)
	}

	slog.Info("Audit entry recorded",
		"action", entry.Action,
		"entity_type", entry.EntityType,
		"entity_id", entry.EntityID,
		"actor", entry.Actor.Name,
	)

	if s.hub != nil {
		s.hub.Publish(FeedTopic, sse.Event{Event: FeedEvent, Data: audit.ToResponse(entry)})
	}

	return entry, nil
}

// List implements audit.AuditService.
func (s *AuditServiceImpl) List(ctx context.Context, filter audit.EntryFilter) ([]audit.EntryResponse, error) {
	entries, err := s.AuditRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	out := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, audit.ToResponse(e))
	}
	return out, nil
}

// Subscribe implements audit.AuditService.
func (s *AuditServiceImpl) Subscribe(ctx context.Context) (<-chan sse.Event, func()) {
	ch, cleanup := s.hub.Subscribe(FeedTopic)
	return ch, cleanup
}

func serialize(v any) (*string, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}
