package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/srad-secure/srad-backend-go/internal/domain/guard"
	"github.com/srad-secure/srad-backend-go/internal/pkg/validator"
)

type guardRepository struct {
	mu     sync.RWMutex
	order  []string
	guards map[string]guard.Guard
}

// NewGuardRepository creates an empty roster store
func NewGuardRepository() guard.GuardRepository {
	return &guardRepository{guards: make(map[string]guard.Guard)}
}

// Create stores a new guard, rejecting duplicate CPF or registration
func (r *guardRepository) Create(ctx context.Context, g guard.Guard) (guard.Guard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.guards {
		if existing.CPF == g.CPF {
			return guard.Guard{}, guard.ErrCPFExists
		}
		if existing.Registration == g.Registration {
			return guard.Guard{}, guard.ErrRegistrationExists
		}
	}

	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	r.guards[g.ID] = g.Clone()
	r.order = append(r.order, g.ID)
	return g.Clone(), nil
}

func (r *guardRepository) GetByID(ctx context.Context, id string) (guard.Guard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.guards[id]
	if !ok {
		return guard.Guard{}, guard.ErrGuardNotFound
	}
	return g.Clone(), nil
}

// List returns matching guards in admission order
func (r *guardRepository) List(ctx context.Context, filter guard.GuardFilter) ([]guard.Guard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var query, digits string
	if filter.Query != nil {
		query = strings.ToLower(strings.TrimSpace(*filter.Query))
		digits = validator.DigitsOnly(query)
	}

	out := make([]guard.Guard, 0, len(r.order))
	for _, id := range r.order {
		g := r.guards[id]
		if filter.Crew != nil && g.Crew != *filter.Crew {
			continue
		}
		if filter.Status != nil && g.Status != *filter.Status {
			continue
		}
		if query != "" && !matchesQuery(g, query, digits) {
			continue
		}
		out = append(out, g.Clone())
	}
	return out, nil
}

func matchesQuery(g guard.Guard, query, digits string) bool {
	if strings.Contains(strings.ToLower(g.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(g.Registration), query) {
		return true
	}
	return digits != "" && strings.Contains(g.CPF, digits)
}

// Update runs fn against a working copy and stores it only if fn succeeds
func (r *guardRepository) Update(ctx context.Context, id string, fn guard.MutateFunc) (guard.Guard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.guards[id]
	if !ok {
		return guard.Guard{}, guard.ErrGuardNotFound
	}

	working := current.Clone()
	if err := fn(&working); err != nil {
		return current.Clone(), err
	}
	working.ID = id
	r.guards[id] = working
	return working.Clone(), nil
}

func (r *guardRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.guards {
		if g.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (r *guardRepository) ExistsByRegistration(ctx context.Context, registration string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.guards {
		if g.Registration == registration {
			return true, nil
		}
	}
	return false, nil
}
