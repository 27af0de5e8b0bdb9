package absence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
)

type AbsenceServiceImpl struct {
	absence.AbsenceRepository
	guardRepo    guard.GuardRepository
	postRepo     post.PostRepository
	settingsRepo settings.SettingsRepository
	audit        audit.AuditService
	now          func() time.Time
}

func NewAbsenceService(
	absenceRepo absence.AbsenceRepository,
	guardRepo guard.GuardRepository,
	postRepo post.PostRepository,
	settingsRepo settings.SettingsRepository,
	auditService audit.AuditService,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		AbsenceRepository: absenceRepo,
		guardRepo:         guardRepo,
		postRepo:          postRepo,
		settingsRepo:      settingsRepo,
		audit:             auditService,
		now:               time.Now,
	}
}

// Report implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Report(ctx context.Context, req absence.ReportAbsenceRequest) (absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	p, err := s.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}
	g, err := s.guardRepo.GetByID(ctx, req.GuardID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	now := s.now().UTC()
	date := req.ParsedDate()
	if date.IsZero() {
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	shift := req.Shift
	if shift == "" {
		shift = p.Shift
	}

	created, err := s.AbsenceRepository.Create(ctx, absence.Absence{
		Date:       date,
		PostID:     p.ID,
		GuardID:    g.ID,
		Crew:       g.Crew,
		Shift:      shift,
		Status:     absence.StatusPending,
		Reason:     strings.TrimSpace(req.Reason),
		ReportedAt: now,
	})
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to create absence: %w", err)
	}

	resp := absence.ToResponse(created)
	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionAbsenceReported,
		EntityType: audit.EntityAbsence,
		EntityID:   created.ID,
		New:        resp,
	}); err != nil {
		return absence.AbsenceResponse{}, err
	}

	slog.Info("Absence reported", "absence_id", created.ID, "post_id", p.ID, "guard_id", g.ID, "crew", g.Crew)
	return resp, nil
}

// Get implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Get(ctx context.Context, id string) (absence.AbsenceResponse, error) {
	a, err := s.AbsenceRepository.GetByID(ctx, id)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}
	return absence.ToResponse(a), nil
}

// List implements absence.AbsenceService.
func (s *AbsenceServiceImpl) List(ctx context.Context, filter absence.AbsenceFilter) ([]absence.AbsenceResponse, error) {
	absences, err := s.AbsenceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}

	out := make([]absence.AbsenceResponse, 0, len(absences))
	for _, a := range absences {
		out = append(out, absence.ToResponse(a))
	}
	return out, nil
}

// MarkUncovered implements absence.AbsenceService.
func (s *AbsenceServiceImpl) MarkUncovered(ctx context.Context, id string) (absence.AbsenceResponse, error) {
	now := s.now().UTC()
	updated, err := s.AbsenceRepository.Update(ctx, id, absence.RequirePending(func(a *absence.Absence) error {
		a.Status = absence.StatusUncovered
		a.ResolvedAt = &now
		return nil
	}))
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionAbsenceUncovered,
		EntityType: audit.EntityAbsence,
		EntityID:   updated.ID,
		Previous:   absence.StatusPending,
		New:        updated.Status,
	}); err != nil {
		return absence.AbsenceResponse{}, err
	}

	slog.Info("Absence closed without coverage", "absence_id", updated.ID, "post_id", updated.PostID)
	return absence.ToResponse(updated), nil
}

// FlagSLABreaches implements absence.AbsenceService.
func (s *AbsenceServiceImpl) FlagSLABreaches(ctx context.Context) (absence.SLASweepResult, error) {
	result := absence.SLASweepResult{Breached: []string{}}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to read configuration: %w", err)
	}

	pending := absence.StatusPending
	absences, err := s.AbsenceRepository.List(ctx, absence.AbsenceFilter{Status: &pending})
	if err != nil {
		return result, fmt.Errorf("failed to list absences: %w", err)
	}
	result.Pending = len(absences)

	now := s.now().UTC()
	window := time.Duration(cfg.ResponseSLAMinutes * float64(time.Minute))
	for _, candidate := range absences {
		if candidate.SLABreachedAt != nil || now.Sub(candidate.ReportedAt) <= window {
			continue
		}

		updated, err := s.AbsenceRepository.Update(ctx, candidate.ID, absence.RequirePending(func(a *absence.Absence) error {
			if a.SLABreachedAt != nil {
				return errAlreadyFlagged
			}
			a.SLABreachedAt = &now
			return nil
		}))
		if errors.Is(err, absence.ErrAbsenceNotPending) || errors.Is(err, errAlreadyFlagged) {
			// resolved or flagged by a concurrent caller
			continue
		}
		if err != nil {
			return result, fmt.Errorf("failed to flag absence %s: %w", candidate.ID, err)
		}

		elapsed := now.Sub(updated.ReportedAt).Minutes()
		if _, err := s.audit.RecordAs(ctx, audit.SystemActor, audit.RecordRequest{
			Action:     audit.ActionSLABreach,
			EntityType: audit.EntityAbsence,
			EntityID:   updated.ID,
			New: map[string]any{
				"post_id":         updated.PostID,
				"elapsed_minutes": int(elapsed),
				"sla_minutes":     cfg.ResponseSLAMinutes,
			},
		}); err != nil {
			return result, err
		}

		result.Breached = append(result.Breached, updated.ID)
		slog.Warn("Absence response SLA breached", "absence_id", updated.ID, "post_id", updated.PostID, "elapsed_minutes", int(elapsed))
	}

	return result, nil
}

var errAlreadyFlagged = errors.New("sla breach already recorded")
