package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/domain/post"
	"github.com/srad-secure/srad-backend-go/internal/domain/settings"
	"github.com/srad-secure/srad-backend-go/internal/pkg/utils"
	"github.com/srad-secure/srad-backend-go/internal/service/travel"
)

type GuardServiceImpl struct {
	guard.GuardRepository
	postRepo     post.PostRepository
	settingsRepo settings.SettingsRepository
	audit        audit.AuditService
	now          func() time.Time
}

func NewGuardService(
	guardRepo guard.GuardRepository,
	postRepo post.PostRepository,
	settingsRepo settings.SettingsRepository,
	auditService audit.AuditService,
) guard.GuardService {
	return &GuardServiceImpl{
		GuardRepository: guardRepo,
		postRepo:        postRepo,
		settingsRepo:    settingsRepo,
		audit:           auditService,
		now:             time.Now,
	}
}

// Admit implements guard.GuardService.
func (s *GuardServiceImpl) Admit(ctx context.Context, req guard.AdmitGuardRequest) (guard.AdmissionResponse, error) {
	if err := req.Validate(); err != nil {
		return guard.AdmissionResponse{}, err
	}

	exists, err := s.GuardRepository.ExistsByCPF(ctx, req.CPF)
	if err != nil {
		return guard.AdmissionResponse{}, fmt.Errorf("failed to check cpf: %w", err)
	}
	if exists {
		return guard.AdmissionResponse{}, guard.ErrCPFExists
	}

	exists, err = s.GuardRepository.ExistsByRegistration(ctx, req.Registration)
	if err != nil {
		return guard.AdmissionResponse{}, fmt.Errorf("failed to check registration: %w", err)
	}
	if exists {
		return guard.AdmissionResponse{}, guard.ErrRegistrationExists
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return guard.AdmissionResponse{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	assessment := travel.AssessCoverage(req.HomeRegion, req.AuthorizedRegions, cfg.TravelLimit())
	if assessment.HasViolation() {
		names := make([]string, 0, len(assessment.Violations))
		for _, v := range assessment.Violations {
			names = append(names, fmt.Sprintf("%s (%d min)", v.Region, v.Minutes))
		}
		slog.Warn("Admission rejected by travel limit", "cpf", req.CPF, "violations", names)
		return guard.AdmissionResponse{}, fmt.Errorf("%w: %s", guard.ErrTravelLimitExceeded, strings.Join(names, ", "))
	}

	now := s.now().UTC()
	created, err := s.GuardRepository.Create(ctx, guard.Guard{
		Name:              req.Name,
		Registration:      req.Registration,
		CPF:               req.CPF,
		Position:          req.Position,
		Phone:             req.Phone,
		Crew:              req.Crew,
		HomeRegion:        req.HomeRegion,
		AuthorizedRegions: req.AuthorizedRegions,
		Status:            guard.StatusActive,
		NightApt:          true,
		CheckIn:           guard.CheckInPending,
		Documents:         []guard.Document{},
		AdmittedAt:        now,
		UpdatedAt:         now,
	})
	if err != nil {
		return guard.AdmissionResponse{}, err
	}

	resp := guard.ToResponse(created)
	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionGuardAdmitted,
		EntityType: audit.EntityGuard,
		EntityID:   created.ID,
		New:        resp,
	}); err != nil {
		return guard.AdmissionResponse{}, err
	}

	slog.Info("Guard admitted", "guard_id", created.ID, "crew", created.Crew, "home_region", created.HomeRegion)

	times := make([]guard.TravelTime, 0, len(assessment.Regions))
	for _, r := range assessment.Regions {
		times = append(times, guard.TravelTime{Region: r.Region, Minutes: r.Minutes, Exceeded: r.Exceeded})
	}

	return guard.AdmissionResponse{
		Guard:       resp,
		TravelLimit: assessment.Limit,
		TravelTimes: times,
	}, nil
}

// Get implements guard.GuardService.
func (s *GuardServiceImpl) Get(ctx context.Context, id string) (guard.GuardResponse, error) {
	g, err := s.GuardRepository.GetByID(ctx, id)
	if err != nil {
		return guard.GuardResponse{}, err
	}
	return guard.ToResponse(g), nil
}

// List implements guard.GuardService.
func (s *GuardServiceImpl) List(ctx context.Context, filter guard.GuardFilter) ([]guard.GuardResponse, error) {
	guards, err := s.GuardRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list guards: %w", err)
	}

	out := make([]guard.GuardResponse, 0, len(guards))
	for _, g := range guards {
		out = append(out, guard.ToResponse(g))
	}
	return out, nil
}

// CheckIn implements guard.GuardService.
func (s *GuardServiceImpl) CheckIn(ctx context.Context, req guard.CheckInRequest) (guard.GuardResponse, error) {
	if err := req.Validate(); err != nil {
		return guard.GuardResponse{}, err
	}

	var (
		previous guard.CheckInState
		state    guard.CheckInState
		distance *float64
	)
	now := s.now().UTC()
	lat, lng := req.Latitude, req.Longitude

	g, err := s.GuardRepository.Update(ctx, req.GuardID, func(g *guard.Guard) error {
		previous = g.CheckIn
		state = guard.CheckInPending
		distance = nil
		if g.CurrentPostID != nil {
			p, err := s.postRepo.GetByID(ctx, *g.CurrentPostID)
			switch {
			case err == nil:
				d := utils.CalculateHaversineDistance(lat, lng, p.Latitude, p.Longitude)
				distance = &d
				state = guard.CheckInOutside
				if d <= p.RadiusMeters {
					state = guard.CheckInInside
				}
			case errors.Is(err, post.ErrPostNotFound):
				// dangling assignment: keep the check-in pending
			default:
				return fmt.Errorf("failed to load post: %w", err)
			}
		}

		g.CheckIn = state
		g.LastCheckInAt = &now
		g.LastLatitude = &lat
		g.LastLongitude = &lng
		g.UpdatedAt = now
		return nil
	})
	if err != nil {
		return guard.GuardResponse{}, err
	}

	details := map[string]any{"state": state, "latitude": lat, "longitude": lng}
	if distance != nil {
		details["distance_meters"] = *distance
	}
	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionCheckIn,
		EntityType: audit.EntityGuard,
		EntityID:   g.ID,
		Previous:   previous,
		New:        details,
	}); err != nil {
		return guard.GuardResponse{}, err
	}

	if state == guard.CheckInOutside {
		slog.Warn("Check-in outside geofence", "guard_id", g.ID, "post_id", *g.CurrentPostID, "distance_meters", *distance)
	}

	return guard.ToResponse(g), nil
}

// UpdateStatus implements guard.GuardService.
func (s *GuardServiceImpl) UpdateStatus(ctx context.Context, req guard.UpdateStatusRequest) (guard.GuardResponse, error) {
	if err := req.Validate(); err != nil {
		return guard.GuardResponse{}, err
	}

	var previous guard.Status
	g, err := s.GuardRepository.Update(ctx, req.GuardID, func(g *guard.Guard) error {
		if g.Status == req.Status {
			return guard.ErrStatusUnchanged
		}
		previous = g.Status
		g.Status = req.Status
		g.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return guard.GuardResponse{}, err
	}

	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionGuardStatusChanged,
		EntityType: audit.EntityGuard,
		EntityID:   g.ID,
		Previous:   previous,
		New:        map[string]any{"status": g.Status, "reason": req.Reason},
	}); err != nil {
		return guard.GuardResponse{}, err
	}

	slog.Info("Guard status changed", "guard_id", g.ID, "from", previous, "to", g.Status)
	return guard.ToResponse(g), nil
}

// UpdateDocument implements guard.GuardService. A blocked guard returns to
// ACTIVE only when no document is expired as of now.
func (s *GuardServiceImpl) UpdateDocument(ctx context.Context, req guard.UpdateDocumentRequest) (guard.GuardResponse, error) {
	if err := req.Validate(); err != nil {
		return guard.GuardResponse{}, err
	}

	now := s.now().UTC()
	renewed := guard.Document{Kind: req.Kind, ValidUntil: req.ParsedValidUntil()}
	renewed.Status = renewed.StatusAt(now)

	var (
		previous     *guard.Document
		statusBefore guard.Status
	)
	g, err := s.GuardRepository.Update(ctx, req.GuardID, func(g *guard.Guard) error {
		previous = nil
		replaced := false
		for i := range g.Documents {
			if g.Documents[i].Kind == req.Kind {
				old := g.Documents[i]
				previous = &old
				g.Documents[i] = renewed
				replaced = true
				break
			}
		}
		if !replaced {
			g.Documents = append(g.Documents, renewed)
		}
		g.RefreshDocuments(now)

		statusBefore = g.Status
		if g.Status == guard.StatusBlocked && !g.HasExpiredDocument() {
			g.Status = guard.StatusActive
		}
		g.UpdatedAt = now
		return nil
	})
	if err != nil {
		return guard.GuardResponse{}, err
	}

	var prevValue any
	if previous != nil {
		prevValue = documentValue(*previous)
	}
	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionDocumentUpdated,
		EntityType: audit.EntityGuard,
		EntityID:   g.ID,
		Previous:   prevValue,
		New:        documentValue(renewed),
	}); err != nil {
		return guard.GuardResponse{}, err
	}

	if statusBefore != g.Status {
		slog.Info("Guard unblocked after document renewal", "guard_id", g.ID, "kind", req.Kind)
	}
	return guard.ToResponse(g), nil
}

func documentValue(d guard.Document) map[string]any {
	return map[string]any{
		"kind":        d.Kind,
		"valid_until": d.ValidUntil.Format("2006-01-02"),
		"status":      d.Status,
	}
}

var errNothingToSweep = errors.New("guard already compliant")

// EnforceDocumentCompliance implements guard.GuardService. Each guard is
// reclassified inside its own store update.
func (s *GuardServiceImpl) EnforceDocumentCompliance(ctx context.Context) (guard.ComplianceSweepResult, error) {
	result := guard.ComplianceSweepResult{Blocked: []string{}}

	guards, err := s.GuardRepository.List(ctx, guard.GuardFilter{})
	if err != nil {
		return result, fmt.Errorf("failed to list guards: %w", err)
	}

	now := s.now().UTC()
	for _, listed := range guards {
		var (
			previous     guard.Status
			newlyExpired []guard.DocumentKind
			expired      int
			alerts       int
			blocked      bool
		)
		g, err := s.GuardRepository.Update(ctx, listed.ID, func(g *guard.Guard) error {
			expired, alerts, blocked = 0, 0, false
			changed := false
			for _, d := range g.Documents {
				if d.StatusAt(now) != d.Status {
					changed = true
				}
			}
			newlyExpired = g.RefreshDocuments(now)
			for _, d := range g.Documents {
				switch d.Status {
				case guard.DocumentExpired:
					expired++
				case guard.DocumentAlert:
					alerts++
				}
			}

			previous = g.Status
			if g.IsActive() && g.HasExpiredDocument() {
				g.Status = guard.StatusBlocked
				blocked = true
				changed = true
			}
			if !changed {
				return errNothingToSweep
			}
			g.UpdatedAt = now
			return nil
		})
		switch {
		case errors.Is(err, errNothingToSweep):
		case errors.Is(err, guard.ErrGuardNotFound):
			continue
		case err != nil:
			return result, fmt.Errorf("failed to update guard %s: %w", listed.ID, err)
		}

		result.Checked++
		result.Expired += expired
		result.Alerts += alerts
		if err != nil {
			continue
		}
		if blocked {
			result.Blocked = append(result.Blocked, g.ID)
		}

		if len(newlyExpired) == 0 && previous == g.Status {
			continue
		}
		if _, err := s.audit.RecordAs(ctx, audit.SystemActor, audit.RecordRequest{
			Action:     audit.ActionDocumentExpired,
			EntityType: audit.EntityGuard,
			EntityID:   g.ID,
			Previous:   previous,
			New:        map[string]any{"status": g.Status, "expired": newlyExpired},
		}); err != nil {
			return result, err
		}
		slog.Warn("Guard document expired", "guard_id", g.ID, "kinds", newlyExpired, "status", g.Status)
	}

	return result, nil
}
