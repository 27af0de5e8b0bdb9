package equipment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/audit"
	"github.com/srad-secure/srad-backend-go/internal/domain/equipment"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
)

type EquipmentServiceImpl struct {
	equipment.EquipmentRepository
	guardRepo guard.GuardRepository
	audit     audit.AuditService
	now       func() time.Time
}

func NewEquipmentService(
	equipmentRepo equipment.EquipmentRepository,
	guardRepo guard.GuardRepository,
	auditSvc audit.AuditService,
) equipment.EquipmentService {
	return &EquipmentServiceImpl{
		EquipmentRepository: equipmentRepo,
		guardRepo:           guardRepo,
		audit:               auditSvc,
		now:                 time.Now,
	}
}

// Register implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) Register(ctx context.Context, req equipment.RegisterEquipmentRequest) (equipment.EquipmentResponse, error) {
	if err := req.Validate(); err != nil {
		return equipment.EquipmentResponse{}, err
	}

	now := s.now().UTC()
	created, err := s.EquipmentRepository.Create(ctx, equipment.Equipment{
		Kind:         req.Kind,
		AssetTag:     req.AssetTag,
		Status:       equipment.StatusAvailable,
		RegisteredAt: now,
		UpdatedAt:    now,
	})
	if err != nil {
		return equipment.EquipmentResponse{}, err
	}

	resp := equipment.ToResponse(created)
	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionEquipmentRegistered,
		EntityType: audit.EntityEquipment,
		EntityID:   created.ID,
		New:        resp,
	}); err != nil {
		return equipment.EquipmentResponse{}, err
	}

	slog.Info("Equipment registered", "equipment_id", created.ID, "kind", created.Kind, "asset_tag", created.AssetTag)
	return resp, nil
}

// List implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) List(ctx context.Context, filter equipment.EquipmentFilter) ([]equipment.EquipmentResponse, error) {
	items, err := s.EquipmentRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	out := make([]equipment.EquipmentResponse, 0, len(items))
	for _, e := range items {
		out = append(out, equipment.ToResponse(e))
	}
	return out, nil
}

// Summary implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) Summary(ctx context.Context) (equipment.SummaryResponse, error) {
	items, err := s.EquipmentRepository.List(ctx, equipment.EquipmentFilter{})
	if err != nil {
		return equipment.SummaryResponse{}, fmt.Errorf("failed to list equipment: %w", err)
	}
	return equipment.Summarize(items), nil
}

// CheckOut implements equipment.EquipmentService. Only ACTIVE guards may
// hold assets.
func (s *EquipmentServiceImpl) CheckOut(ctx context.Context, req equipment.CheckOutRequest) (equipment.EquipmentResponse, error) {
	if err := req.Validate(); err != nil {
		return equipment.EquipmentResponse{}, err
	}

	g, err := s.guardRepo.GetByID(ctx, req.GuardID)
	if err != nil {
		return equipment.EquipmentResponse{}, err
	}
	if !g.IsActive() {
		return equipment.EquipmentResponse{}, fmt.Errorf("%w: %s is %s", equipment.ErrGuardNotActive, g.ID, g.Status)
	}

	now := s.now().UTC()
	updated, err := s.EquipmentRepository.Update(ctx, req.ID, func(e *equipment.Equipment) error {
		return e.CheckOut(g.ID, now)
	})
	if err != nil {
		return equipment.EquipmentResponse{}, err
	}

	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionEquipmentCheckedOut,
		EntityType: audit.EntityEquipment,
		EntityID:   updated.ID,
		Previous:   equipment.StatusAvailable,
		New:        map[string]any{"status": updated.Status, "guard_id": g.ID},
	}); err != nil {
		return equipment.EquipmentResponse{}, err
	}

	slog.Info("Equipment checked out", "equipment_id", updated.ID, "asset_tag", updated.AssetTag, "guard_id", g.ID)
	return equipment.ToResponse(updated), nil
}

// Return implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) Return(ctx context.Context, req equipment.ReturnRequest) (equipment.EquipmentResponse, error) {
	var holder string
	updated, err := s.EquipmentRepository.Update(ctx, req.ID, func(e *equipment.Equipment) error {
		if e.GuardID != nil {
			holder = *e.GuardID
		}
		return e.Return(req.Damaged, s.now().UTC())
	})
	if err != nil {
		return equipment.EquipmentResponse{}, err
	}

	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionEquipmentReturned,
		EntityType: audit.EntityEquipment,
		EntityID:   updated.ID,
		Previous:   map[string]any{"status": equipment.StatusInUse, "guard_id": holder},
		New:        map[string]any{"status": updated.Status, "damaged": req.Damaged},
	}); err != nil {
		return equipment.EquipmentResponse{}, err
	}

	if req.Damaged {
		slog.Warn("Equipment returned damaged", "equipment_id", updated.ID, "asset_tag", updated.AssetTag, "guard_id", holder)
	} else {
		slog.Info("Equipment returned", "equipment_id", updated.ID, "asset_tag", updated.AssetTag, "guard_id", holder)
	}
	return equipment.ToResponse(updated), nil
}

// Restore implements equipment.EquipmentService.
func (s *EquipmentServiceImpl) Restore(ctx context.Context, id string) (equipment.EquipmentResponse, error) {
	updated, err := s.EquipmentRepository.Update(ctx, id, func(e *equipment.Equipment) error {
		return e.Restore(s.now().UTC())
	})
	if err != nil {
		return equipment.EquipmentResponse{}, err
	}

	if _, err := s.audit.Record(ctx, audit.RecordRequest{
		Action:     audit.ActionEquipmentRestored,
		EntityType: audit.EntityEquipment,
		EntityID:   updated.ID,
		Previous:   equipment.StatusMaintenance,
		New:        updated.Status,
	}); err != nil {
		return equipment.EquipmentResponse{}, err
	}

	slog.Info("Equipment back in service", "equipment_id", updated.ID, "asset_tag", updated.AssetTag)
	return equipment.ToResponse(updated), nil
}
