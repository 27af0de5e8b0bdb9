package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	audit audit.AuditService
	now   func() time.Time

	// serializes start and handover so only one shift is ever active
	mu sync.Mutex
}

func NewShiftService(shiftRepo shift.ShiftRepository, auditSvc audit.AuditService) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository: shiftRepo,
		audit:           auditSvc,
		now:             time.Now,
	}
}

func (s *ShiftServiceImpl) active(ctx context.Context) (shift.SupervisorShift, error) {
	status := shift.StatusActive
	shifts, err := s.ShiftRepository.List(ctx, shift.ShiftFilter{Status: &status})
	if err != nil {
		return shift.SupervisorShift{}, fmt.Errorf("failed to list shifts: %w", err)
	}
	if len(shifts) == 0 {
		return shift.SupervisorShift{}, shift.ErrNoActiveShift
	}
	return shifts[0], nil
}

// Start implements shift.ShiftService.
func (s *ShiftServiceImpl) Start(ctx context.Context, req shift.StartShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.active(ctx)
	switch {
	case err == nil:
		return shift.ShiftResponse{}, fmt.Errorf("%w: %s", shift.ErrShiftAlreadyActive, current.Supervisor)
	case !errors.Is(err, shift.ErrNoActiveShift):
		return shift.ShiftResponse{}, err
	}

	created, err := s.ShiftRepository.Create(ctx, shift.SupervisorShift{
		Supervisor: req.Supervisor,
		Shift:      req.Shift,
		StartedAt:  s.now().UTC(),
		Status:     shift.StatusActive,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	resp := shift.ToResponse(created)
	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionShiftStarted,
		EntityType: audit.EntityShift,
		EntityID:   created.ID,
		New:        resp,
	}); err != nil {
		return shift.ShiftResponse{}, err
	}

	slog.Info("Supervisor shift started", "shift_id", created.ID, "supervisor", created.Supervisor, "shift", created.Shift)
	return resp, nil
}

// Current implements shift.ShiftService.
func (s *ShiftServiceImpl) Current(ctx context.Context) (shift.ShiftResponse, error) {
	current, err := s.active(ctx)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(current), nil
}

// Handover implements shift.ShiftService. The outgoing shift is closed with
// the notes and the incoming supervisor's shift opens at the same instant.
func (s *ShiftServiceImpl) Handover(ctx context.Context, req shift.HandoverRequest) (shift.HandoverResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.HandoverResponse{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.active(ctx)
	if err != nil {
		return shift.HandoverResponse{}, err
	}
	if current.Supervisor == req.IncomingSupervisor {
		return shift.HandoverResponse{}, shift.ErrSameSupervisor
	}

	now := s.now().UTC()
	outgoing, err := s.ShiftRepository.Update(ctx, current.ID, func(sh *shift.SupervisorShift) error {
		if sh.Status != shift.StatusActive {
			return shift.ErrNoActiveShift
		}
		sh.Status = shift.StatusEnded
		sh.EndedAt = &now
		sh.HandoverNotes = req.Notes
		sh.HandedOverTo = req.IncomingSupervisor
		return nil
	})
	if err != nil {
		return shift.HandoverResponse{}, err
	}

	next := req.Shift
	if next == "" {
		next = outgoing.Shift
	}
	incoming, err := s.ShiftRepository.Create(ctx, shift.SupervisorShift{
		Supervisor: req.IncomingSupervisor,
		Shift:      next,
		StartedAt:  now,
		Status:     shift.StatusActive,
	})
	if err != nil {
		return shift.HandoverResponse{}, fmt.Errorf("failed to open incoming shift: %w", err)
	}

	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionShiftHandover,
		EntityType: audit.EntityShift,
		EntityID:   outgoing.ID,
		Previous:   outgoing.Supervisor,
		New: map[string]any{
			"incoming_supervisor": incoming.Supervisor,
			"incoming_shift_id":   incoming.ID,
			"notes":               req.Notes,
		},
	}); err != nil {
		return shift.HandoverResponse{}, err
	}

	slog.Info("Supervisor shift handed over", "from", outgoing.Supervisor, "to", incoming.Supervisor, "shift_id", incoming.ID)
	return shift.HandoverResponse{
		Outgoing: shift.ToResponse(outgoing),
		Incoming: shift.ToResponse(incoming),
	}, nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	out := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		out = append(out, shift.ToResponse(sh))
	}
	return out, nil
}
