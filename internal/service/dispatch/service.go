package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/dispatch"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
)

type DispatchServiceImpl struct {
	guardRepo     guard.GuardRepository
	postRepo      post.PostRepository
	absenceRepo   absence.AbsenceRepository
	exceptionRepo exception.ExceptionRepository
	settingsRepo  settings.SettingsRepository
	audit         audit.AuditService

	absenceLocks *keyedMutex
	guardLocks   *keyedMutex
	now          func() time.Time
}

func NewDispatchService(
	guardRepo guard.GuardRepository,
	postRepo post.PostRepository,
	absenceRepo absence.AbsenceRepository,
	exceptionRepo exception.ExceptionRepository,
	settingsRepo settings.SettingsRepository,
	auditService audit.AuditService,
) dispatch.DispatchService {
	return &DispatchServiceImpl{
		guardRepo:     guardRepo,
		postRepo:      postRepo,
		absenceRepo:   absenceRepo,
		exceptionRepo: exceptionRepo,
		settingsRepo:  settingsRepo,
		audit:         auditService,
		absenceLocks:  newKeyedMutex(),
		guardLocks:    newKeyedMutex(),
		now:           time.Now,
	}
}

// usableExceptions snapshots approved, unconsumed exceptions. A non-empty
// guardID narrows the snapshot to one guard.
func (s *DispatchServiceImpl) usableExceptions(ctx context.Context, guardID string) (exception.Set, error) {
	approved := exception.StatusApproved
	filter := exception.ExceptionFilter{Status: &approved}
	if guardID != "" {
		filter.GuardID = &guardID
	}

	items, err := s.exceptionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list regional exceptions: %w", err)
	}
	return exception.NewSet(items), nil
}

// resolveGuard returns nil for a dangling reference.
func (s *DispatchServiceImpl) resolveGuard(ctx context.Context, id string) (*guard.Guard, error) {
	g, err := s.guardRepo.GetByID(ctx, id)
	if errors.Is(err, guard.ErrGuardNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load guard: %w", err)
	}
	return &g, nil
}

// resolvePost returns nil for a dangling reference.
func (s *DispatchServiceImpl) resolvePost(ctx context.Context, id string) (*post.Post, error) {
	p, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, post.ErrPostNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return &p, nil
}

// ValidateDispatch implements dispatch.DispatchService.
func (s *DispatchServiceImpl) ValidateDispatch(ctx context.Context, guardID, postID string) (dispatch.Validation, error) {
	g, err := s.resolveGuard(ctx, guardID)
	if err != nil {
		return dispatch.Validation{}, err
	}
	p, err := s.resolvePost(ctx, postID)
	if err != nil {
		return dispatch.Validation{}, err
	}
	exceptions, err := s.usableExceptions(ctx, guardID)
	if err != nil {
		return dispatch.Validation{}, err
	}

	return ValidateDispatch(g, p, exceptions), nil
}

// RankForAbsence implements dispatch.DispatchService.
func (s *DispatchServiceImpl) RankForAbsence(ctx context.Context, absenceID string, limit int) (dispatch.RankingResponse, error) {
	a, err := s.absenceRepo.GetByID(ctx, absenceID)
	if err != nil {
		return dispatch.RankingResponse{}, err
	}
	if a.Status != absence.StatusPending {
		return dispatch.RankingResponse{}, absence.ErrAbsenceNotPending
	}

	p, err := s.resolvePost(ctx, a.PostID)
	if err != nil {
		return dispatch.RankingResponse{}, err
	}
	roster, err := s.guardRepo.List(ctx, guard.GuardFilter{})
	if err != nil {
		return dispatch.RankingResponse{}, fmt.Errorf("failed to list guards: %w", err)
	}
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return dispatch.RankingResponse{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	exceptions, err := s.usableExceptions(ctx, "")
	if err != nil {
		return dispatch.RankingResponse{}, err
	}

	ranked := RankSubstitutes(a, p, roster, cfg, exceptions)
	total := len(ranked)
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	resp := dispatch.RankingResponse{
		Absence:    absence.ToResponse(a),
		Candidates: make([]dispatch.CandidateResponse, 0, len(ranked)),
		Total:      total,
	}
	if p != nil {
		resp.PostRegion = p.Region
	}
	for _, c := range ranked {
		resp.Candidates = append(resp.Candidates, dispatch.ToCandidateResponse(c))
	}
	return resp, nil
}

// CommitCoverage implements dispatch.DispatchService.
func (s *DispatchServiceImpl) CommitCoverage(ctx context.Context, req dispatch.CoverRequest) (dispatch.CoverageResponse, error) {
	if err := req.Validate(); err != nil {
		return dispatch.CoverageResponse{}, err
	}

	unlock := s.absenceLocks.Lock(req.AbsenceID)
	defer unlock()

	a, err := s.absenceRepo.GetByID(ctx, req.AbsenceID)
	if err != nil {
		return dispatch.CoverageResponse{}, err
	}
	if a.Status != absence.StatusPending {
		return dispatch.CoverageResponse{}, s.rejectCoverage(a, req.SubstituteID, absence.ErrAbsenceNotPending)
	}

	substitute, err := s.resolveGuard(ctx, req.SubstituteID)
	if err != nil {
		return dispatch.CoverageResponse{}, err
	}
	p, err := s.resolvePost(ctx, a.PostID)
	if err != nil {
		return dispatch.CoverageResponse{}, err
	}

	if substitute != nil {
		switch {
		case substitute.ID == a.GuardID:
			return dispatch.CoverageResponse{}, s.rejectCoverage(a, req.SubstituteID, dispatch.ErrAbsentGuard)
		case substitute.Crew == a.Crew:
			return dispatch.CoverageResponse{}, s.rejectCoverage(a, req.SubstituteID, dispatch.ErrSameCrew)
		case !substitute.IsActive():
			return dispatch.CoverageResponse{}, s.rejectCoverage(a, req.SubstituteID, dispatch.ErrGuardNotActive)
		}
	}

	exceptions, err := s.usableExceptions(ctx, req.SubstituteID)
	if err != nil {
		return dispatch.CoverageResponse{}, err
	}
	validation := ValidateDispatch(substitute, p, exceptions)
	if !validation.OK {
		return dispatch.CoverageResponse{}, s.rejectCoverage(a, req.SubstituteID, validation.Err())
	}

	now := s.now().UTC()
	if validation.ExceptionID != "" {
		if err := s.consumeException(ctx, validation.ExceptionID, now, a.ID); err != nil {
			return dispatch.CoverageResponse{}, s.rejectCoverage(a, req.SubstituteID, err)
		}
	}

	substituteID := substitute.ID
	covered, err := s.absenceRepo.Update(ctx, a.ID, absence.RequirePending(func(rec *absence.Absence) error {
		rec.Status = absence.StatusCovered
		rec.SubstituteID = &substituteID
		rec.ResolvedAt = &now
		return nil
	}))
	if err != nil {
		if validation.ExceptionID != "" {
			s.releaseException(ctx, validation.ExceptionID, now)
		}
		return dispatch.CoverageResponse{}, s.rejectCoverage(a, req.SubstituteID, err)
	}

	next := map[string]any{"status": covered.Status, "substitute_id": substituteID}
	if validation.ExceptionID != "" {
		next["exception_id"] = validation.ExceptionID
	}
	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionAbsenceCovered,
		EntityType: audit.EntityAbsence,
		EntityID:   covered.ID,
		Previous:   absence.StatusPending,
		New:        next,
	}); err != nil {
		return dispatch.CoverageResponse{}, err
	}

	slog.Info("Absence covered", "absence_id", covered.ID, "post_id", covered.PostID, "substitute_id", substituteID, "reason", validation.Reason)
	return dispatch.CoverageResponse{
		Absence:    absence.ToResponse(covered),
		Validation: validation,
	}, nil
}

func (s *DispatchServiceImpl) rejectCoverage(a absence.Absence, substituteID string, err error) error {
	slog.Warn("Coverage rejected", "absence_id", a.ID, "post_id", a.PostID, "substitute_id", substituteID, "error", err)
	return err
}

// consumeException spends a regional exception and audits it. usedFor is the
// absence or guard the exception was spent on.
func (s *DispatchServiceImpl) consumeException(ctx context.Context, id string, at time.Time, usedFor string) error {
	consumed, err := s.exceptionRepo.Update(ctx, id, exception.Consume(at))
	if err != nil {
		if errors.Is(err, exception.ErrNotUsable) {
			// lost a race with another dispatch
			return dispatch.ErrRegionNotAuthorized
		}
		return err
	}

	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionExceptionConsumed,
		EntityType: audit.EntityException,
		EntityID:   consumed.ID,
		Previous:   exception.StatusApproved,
		New: map[string]any{
			"guard_id":    consumed.GuardID,
			"post_id":     consumed.PostID,
			"used_for":    usedFor,
			"consumed_at": at,
		},
	}); err != nil {
		return err
	}
	slog.Info("Regional exception consumed", "exception_id", consumed.ID, "guard_id", consumed.GuardID, "post_id", consumed.PostID)
	return nil
}

// releaseException undoes a consumption whose dispatch did not go through.
func (s *DispatchServiceImpl) releaseException(ctx context.Context, id string, at time.Time) {
	_, err := s.exceptionRepo.Update(ctx, id, func(e *exception.RegionalException) error {
		if e.ConsumedAt == nil || !e.ConsumedAt.Equal(at) {
			return exception.ErrNotUsable
		}
		e.ConsumedAt = nil
		return nil
	})
	if err != nil {
		slog.Error("Failed to release regional exception", "exception_id", id, "error", err)
	}
}

// Reassign implements dispatch.DispatchService.
func (s *DispatchServiceImpl) Reassign(ctx context.Context, req dispatch.ReassignRequest) (dispatch.ReassignResponse, error) {
	if err := req.Validate(); err != nil {
		return dispatch.ReassignResponse{}, err
	}

	unlock := s.guardLocks.Lock(req.GuardID)
	defer unlock()

	g, err := s.guardRepo.GetByID(ctx, req.GuardID)
	if err != nil {
		return dispatch.ReassignResponse{}, err
	}
	p, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return dispatch.ReassignResponse{}, err
	}

	if !g.IsActive() {
		return dispatch.ReassignResponse{}, s.rejectReassign(g.ID, p.ID, dispatch.ErrGuardNotActive)
	}
	if g.CurrentPostID != nil && *g.CurrentPostID == p.ID {
		return dispatch.ReassignResponse{}, s.rejectReassign(g.ID, p.ID, dispatch.ErrAlreadyAssigned)
	}

	exceptions, err := s.usableExceptions(ctx, g.ID)
	if err != nil {
		return dispatch.ReassignResponse{}, err
	}
	validation := ValidateDispatch(&g, &p, exceptions)
	if !validation.OK {
		return dispatch.ReassignResponse{}, s.rejectReassign(g.ID, p.ID, validation.Err())
	}

	now := s.now().UTC()
	if validation.ExceptionID != "" {
		if err := s.consumeException(ctx, validation.ExceptionID, now, g.ID); err != nil {
			return dispatch.ReassignResponse{}, s.rejectReassign(g.ID, p.ID, err)
		}
	}

	var previous any
	postID := p.ID
	g, err = s.guardRepo.Update(ctx, g.ID, func(g *guard.Guard) error {
		// status may have moved since the snapshot (compliance sweep, HR)
		if !g.IsActive() {
			return dispatch.ErrGuardNotActive
		}
		if g.CurrentPostID != nil && *g.CurrentPostID == postID {
			return dispatch.ErrAlreadyAssigned
		}
		previous = nil
		if g.CurrentPostID != nil {
			previous = *g.CurrentPostID
		}
		g.CurrentPostID = &postID
		g.CheckIn = guard.CheckInPending
		g.UpdatedAt = now
		return nil
	})
	if err != nil {
		if validation.ExceptionID != "" {
			s.releaseException(ctx, validation.ExceptionID, now)
		}
		if errors.Is(err, dispatch.ErrGuardNotActive) || errors.Is(err, dispatch.ErrAlreadyAssigned) {
			return dispatch.ReassignResponse{}, s.rejectReassign(req.GuardID, p.ID, err)
		}
		return dispatch.ReassignResponse{}, fmt.Errorf("failed to update guard: %w", err)
	}

	next := map[string]any{
		"post_id":       p.ID,
		"justification": strings.TrimSpace(req.Justification),
	}
	if validation.ExceptionID != "" {
		next["exception_id"] = validation.ExceptionID
	}
	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionGuardReassigned,
		EntityType: audit.EntityGuard,
		EntityID:   g.ID,
		Previous:   previous,
		New:        next,
	}); err != nil {
		return dispatch.ReassignResponse{}, err
	}

	slog.Info("Guard reassigned", "guard_id", g.ID, "post_id", p.ID, "reason", validation.Reason)
	return dispatch.ReassignResponse{
		Guard:      guard.ToResponse(g),
		Validation: validation,
	}, nil
}

func (s *DispatchServiceImpl) rejectReassign(guardID, postID string, err error) error {
	slog.Warn("Reassignment rejected", "guard_id", guardID, "post_id", postID, "error", err)
	return err
}
