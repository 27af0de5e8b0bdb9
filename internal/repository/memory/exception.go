package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/srad-secure/srad-backend-go/internal/domain/exception"
)

type exceptionRepository struct {
	mu         sync.RWMutex
	order      []string
	exceptions map[string]exception.RegionalException
}

// NewExceptionRepository creates an empty regional exception store
func NewExceptionRepository() exception.ExceptionRepository {
	return &exceptionRepository{exceptions: make(map[string]exception.RegionalException)}
}

func (r *exceptionRepository) Create(ctx context.Context, e exception.RegionalException) (exception.RegionalException, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	r.exceptions[e.ID] = e.Clone()
	r.order = append(r.order, e.ID)
	return e.Clone(), nil
}

func (r *exceptionRepository) GetByID(ctx context.Context, id string) (exception.RegionalException, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.exceptions[id]
	if !ok {
		return exception.RegionalException{}, exception.ErrExceptionNotFound
	}
	return e.Clone(), nil
}

func (r *exceptionRepository) List(ctx context.Context, filter exception.ExceptionFilter) ([]exception.RegionalException, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]exception.RegionalException, 0, len(r.order))
	for _, id := range r.order {
		e := r.exceptions[id]
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.GuardID != nil && e.GuardID != *filter.GuardID {
			continue
		}
		if filter.PostID != nil && e.PostID != *filter.PostID {
			continue
		}
		out = append(out, e.Clone())
	}
	return out, nil
}

func (r *exceptionRepository) Update(ctx context.Context, id string, fn exception.MutateFunc) (exception.RegionalException, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.exceptions[id]
	if !ok {
		return exception.RegionalException{}, exception.ErrExceptionNotFound
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		return current.Clone(), err
	}
	working.ID = id
	r.exceptions[id] = working
	return working.Clone(), nil
}
