package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/srad-secure/srad-backend-go/internal/domain/shift"
)

type shiftRepository struct {
	mu     sync.RWMutex
	order  []string
	shifts map[string]shift.SupervisorShift
}

// NewShiftRepository creates an empty supervisor shift log
func NewShiftRepository() shift.ShiftRepository {
	return &shiftRepository{shifts: make(map[string]shift.SupervisorShift)}
}

func (r *shiftRepository) Create(ctx context.Context, s shift.SupervisorShift) (shift.SupervisorShift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	r.shifts[s.ID] = s.Clone()
	r.order = append(r.order, s.ID)
	return s.Clone(), nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.SupervisorShift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.shifts[id]
	if !ok {
		return shift.SupervisorShift{}, shift.ErrShiftNotFound
	}
	return s.Clone(), nil
}

// List returns matching shifts newest first
func (r *shiftRepository) List(ctx context.Context, filter shift.ShiftFilter) ([]shift.SupervisorShift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]shift.SupervisorShift, 0, len(r.order))
	for k := len(r.order) - 1; k >= 0; k-- {
		s := r.shifts[r.order[k]]
		if filter.Status != nil && s.Status != *filter.Status {
			continue
		}
		out = append(out, s.Clone())
	}
	return out, nil
}

func (r *shiftRepository) Update(ctx context.Context, id string, fn func(s *shift.SupervisorShift) error) (shift.SupervisorShift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.shifts[id]
	if !ok {
		return shift.SupervisorShift{}, shift.ErrShiftNotFound
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		return current.Clone(), err
	}
	working.ID = id
	r.shifts[id] = working
	return working.Clone(), nil
}
