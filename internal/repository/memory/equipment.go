package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/srad-secure/srad-backend-go/internal/domain/equipment"
)

type equipmentRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]equipment.Equipment
}

// NewEquipmentRepository creates an empty asset registry
func NewEquipmentRepository() equipment.EquipmentRepository {
	return &equipmentRepository{items: make(map[string]equipment.Equipment)}
}

func (r *equipmentRepository) Create(ctx context.Context, e equipment.Equipment) (equipment.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.items {
		if existing.AssetTag == e.AssetTag {
			return equipment.Equipment{}, equipment.ErrAssetTagExists
		}
	}

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	r.items[e.ID] = e.Clone()
	r.order = append(r.order, e.ID)
	return e.Clone(), nil
}

func (r *equipmentRepository) GetByID(ctx context.Context, id string) (equipment.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.items[id]
	if !ok {
		return equipment.Equipment{}, equipment.ErrEquipmentNotFound
	}
	return e.Clone(), nil
}

func (r *equipmentRepository) List(ctx context.Context, filter equipment.EquipmentFilter) ([]equipment.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]equipment.Equipment, 0, len(r.order))
	for _, id := range r.order {
		e := r.items[id]
		if filter.Kind != nil && e.Kind != *filter.Kind {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.GuardID != nil && (e.GuardID == nil || *e.GuardID != *filter.GuardID) {
			continue
		}
		out = append(out, e.Clone())
	}
	return out, nil
}

func (r *equipmentRepository) Update(ctx context.Context, id string, fn func(e *equipment.Equipment) error) (equipment.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[id]
	if !ok {
		return equipment.Equipment{}, equipment.ErrEquipmentNotFound
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		return current.Clone(), err
	}
	working.ID = id
	r.items[id] = working
	return working.Clone(), nil
}
