package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/srad-secure/srad-backend-go/internal/domain/absence"
)

type absenceRepository struct {
	mu       sync.RWMutex
	order    []string
	absences map[string]absence.Absence
}

// NewAbsenceRepository creates an empty absence store
func NewAbsenceRepository() absence.AbsenceRepository {
	return &absenceRepository{absences: make(map[string]absence.Absence)}
}

func (r *absenceRepository) Create(ctx context.Context, a absence.Absence) (absence.Absence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	r.absences[a.ID] = a.Clone()
	r.order = append(r.order, a.ID)
	return a.Clone(), nil
}

func (r *absenceRepository) GetByID(ctx context.Context, id string) (absence.Absence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.absences[id]
	if !ok {
		return absence.Absence{}, absence.ErrAbsenceNotFound
	}
	return a.Clone(), nil
}

func (r *absenceRepository) List(ctx context.Context, filter absence.AbsenceFilter) ([]absence.Absence, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]absence.Absence, 0, len(r.order))
	for _, id := range r.order {
		a := r.absences[id]
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		if filter.PostID != nil && a.PostID != *filter.PostID {
			continue
		}
		out = append(out, a.Clone())
	}
	return out, nil
}

// Update runs fn on a working copy under the write lock. The stored record is
// replaced only when fn succeeds, so a status check inside fn is a
// compare-and-set.
func (r *absenceRepository) Update(ctx context.Context, id string, fn absence.MutateFunc) (absence.Absence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.absences[id]
	if !ok {
		return absence.Absence{}, absence.ErrAbsenceNotFound
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		return current.Clone(), err
	}
	working.ID = id
	r.absences[id] = working
	return working.Clone(), nil
}
